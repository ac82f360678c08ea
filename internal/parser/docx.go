package parser

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// extractDOCX returns the top-level body paragraphs of a Word document joined
// by newlines. Tables, headers and footers are not included.
func extractDOCX(_ context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer func() { _ = zr.Close() }()

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("docx has no %s", docxBodyPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", docxBodyPart, err)
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := docxParagraphs(rc)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks document.xml and collects the text of each paragraph
// that is a direct child of w:body.
func docxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		bodyDepth  = -1
		paraDepth  = -1
		runDepth   int
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", docxBodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			name := t.Name.Local
			switch {
			case name == "body" && bodyDepth < 0:
				bodyDepth = depth
			case name == "p" && paraDepth < 0 && bodyDepth >= 0 && depth == bodyDepth+1:
				paraDepth = depth
				current.Reset()
			case paraDepth < 0:
				// outside a body paragraph
			case name == "r":
				runDepth++
			case runDepth == 0:
				// paragraph properties, bookmarks, etc.
			case name == "t":
				inText = true
			case name == "tab":
				current.WriteByte('\t')
			case name == "br" || name == "cr":
				current.WriteByte('\n')
			}

		case xml.EndElement:
			name := t.Name.Local
			switch {
			case paraDepth >= 0 && depth == paraDepth && name == "p":
				paragraphs = append(paragraphs, current.String())
				paraDepth = -1
				runDepth = 0
			case paraDepth >= 0 && name == "r" && runDepth > 0:
				runDepth--
			case name == "t":
				inText = false
			}
			depth--

		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
