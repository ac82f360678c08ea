package parser_test

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile writes data to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// buildPDF assembles a minimal PDF with one page per entry. An empty entry
// produces a page with no content stream.
func buildPDF(pages []string) []byte {
	const fontObj = 3
	var objects []string

	// 1: catalog, 2: page tree, 3: font, then per page a page object and
	// (optionally) its content stream.
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	objects = append(objects, "") // page tree, filled in below
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var kids []string
	for _, text := range pages {
		pageNum := len(objects) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
		resources := fmt.Sprintf("/Resources << /Font << /F1 %d 0 R >> >>", fontObj)
		if text == "" {
			objects = append(objects, fmt.Sprintf(
				"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] %s >>", resources))
			continue
		}
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] %s /Contents %d 0 R >>", resources, pageNum+1))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// buildDOCX packages body (the inner XML of w:body) as a Word document.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// legacySheet is one worksheet for buildXLS. Every cell is a string.
type legacySheet struct {
	name string
	rows [][]string
}

func biffRecord(buf *bytes.Buffer, id uint16, data []byte) {
	_ = binary.Write(buf, binary.LittleEndian, id)
	_ = binary.Write(buf, binary.LittleEndian, uint16(len(data)))
	buf.Write(data)
}

func biffBOF(buf *bytes.Buffer, kind uint16) {
	var d bytes.Buffer
	for _, v := range []interface{}{uint16(0x0600), kind, uint16(0), uint16(0), uint32(0), uint32(0x0600)} {
		_ = binary.Write(&d, binary.LittleEndian, v)
	}
	biffRecord(buf, 0x0809, d.Bytes())
}

// buildXLS assembles a BIFF8 workbook inside a single-FAT compound file.
// Cells are written as LABEL records with 8-bit strings, so names and values
// must be ASCII.
func buildXLS(sheets []legacySheet) []byte {
	const (
		sectorSize = 512
		endOfChain = 0xFFFFFFFE
		freeSect   = 0xFFFFFFFF
		fatSect    = 0xFFFFFFFD
		noStream   = 0xFFFFFFFF
		minStream  = 4096
	)

	// Sheet substreams first, so the BOUNDSHEET offsets are known.
	var sheetStreams [][]byte
	for _, s := range sheets {
		var sb bytes.Buffer
		biffBOF(&sb, 0x0010)
		for r, row := range s.rows {
			var d bytes.Buffer
			for _, v := range []interface{}{uint16(r), uint16(0), uint16(len(row)), uint16(0x00FF), uint16(0), uint16(0), uint32(0x0100)} {
				_ = binary.Write(&d, binary.LittleEndian, v)
			}
			biffRecord(&sb, 0x0208, d.Bytes())
		}
		for r, row := range s.rows {
			for c, val := range row {
				var d bytes.Buffer
				for _, v := range []interface{}{uint16(r), uint16(c), uint16(0x0F), uint16(len(val)), byte(0)} {
					_ = binary.Write(&d, binary.LittleEndian, v)
				}
				d.WriteString(val)
				biffRecord(&sb, 0x0204, d.Bytes())
			}
		}
		biffRecord(&sb, 0x000A, nil)
		sheetStreams = append(sheetStreams, sb.Bytes())
	}

	globalsLen := 4 + 16 + 4 // BOF + EOF
	for _, s := range sheets {
		globalsLen += 4 + 8 + len(s.name)
	}

	var wb bytes.Buffer
	biffBOF(&wb, 0x0005)
	offset := globalsLen
	for i, s := range sheets {
		var d bytes.Buffer
		_ = binary.Write(&d, binary.LittleEndian, uint32(offset))
		d.Write([]byte{0, 0, byte(len(s.name)), 0})
		d.WriteString(s.name)
		biffRecord(&wb, 0x0085, d.Bytes())
		offset += len(sheetStreams[i])
	}
	biffRecord(&wb, 0x000A, nil)
	for _, s := range sheetStreams {
		wb.Write(s)
	}
	// Streams below the mini-stream cutoff would live in the short-sector
	// area; pad past it with an ignored record.
	if pad := minStream - wb.Len(); pad > 0 {
		biffRecord(&wb, 0x00C1, make([]byte, pad))
	}
	stream := wb.Bytes()
	streamSectors := (len(stream) + sectorSize - 1) / sectorSize

	// Layout: header, sector 0 FAT, sector 1 directory, sectors 2.. workbook.
	fat := make([]uint32, sectorSize/4)
	for i := range fat {
		fat[i] = freeSect
	}
	fat[0] = fatSect
	fat[1] = endOfChain
	for i := 0; i < streamSectors; i++ {
		if i == streamSectors-1 {
			fat[2+i] = endOfChain
		} else {
			fat[2+i] = uint32(3 + i)
		}
	}

	var out bytes.Buffer
	out.Write([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	out.Write(make([]byte, 16))
	for _, v := range []interface{}{
		uint16(0x003E), uint16(0x0003), uint16(0xFFFE), uint16(9), uint16(6),
		[6]byte{}, uint32(0), uint32(1), uint32(1), uint32(0),
		uint32(minStream), uint32(endOfChain), uint32(0), uint32(endOfChain), uint32(0),
	} {
		_ = binary.Write(&out, binary.LittleEndian, v)
	}
	msat := make([]uint32, 109)
	for i := range msat {
		msat[i] = freeSect
	}
	msat[0] = 0
	_ = binary.Write(&out, binary.LittleEndian, msat)

	_ = binary.Write(&out, binary.LittleEndian, fat)

	dir := make([]byte, 0, sectorSize)
	dir = append(dir, dirEntry("Root Entry", 5, 1, endOfChain, 0, noStream)...)
	dir = append(dir, dirEntry("Workbook", 2, noStream, 2, uint32(len(stream)), noStream)...)
	dir = append(dir, make([]byte, sectorSize-len(dir))...)
	out.Write(dir)

	out.Write(stream)
	if rem := len(stream) % sectorSize; rem != 0 {
		out.Write(make([]byte, sectorSize-rem))
	}
	return out.Bytes()
}

// dirEntry encodes one 128-byte compound file directory entry.
func dirEntry(name string, kind byte, child, start, size, sibling uint32) []byte {
	var e bytes.Buffer
	var nameBuf [32]uint16
	for i, r := range name {
		nameBuf[i] = uint16(r)
	}
	_ = binary.Write(&e, binary.LittleEndian, nameBuf)
	_ = binary.Write(&e, binary.LittleEndian, uint16((len(name)+1)*2))
	e.Write([]byte{kind, 1})
	for _, v := range []uint32{sibling, sibling, child} {
		_ = binary.Write(&e, binary.LittleEndian, v)
	}
	e.Write(make([]byte, 16+4+16))
	_ = binary.Write(&e, binary.LittleEndian, start)
	_ = binary.Write(&e, binary.LittleEndian, size)
	_ = binary.Write(&e, binary.LittleEndian, uint32(0))
	return e.Bytes()
}
