package parser

import "fmt"

// ErrorMessage is the text returned in place of a document that failed to parse.
func ErrorMessage(err error) string {
	return fmt.Sprintf("Error parsing document: %v", err)
}

// UnsupportedFormatMessage is the text returned when neither a registered
// strategy nor the plain-text fallback could read a file.
func UnsupportedFormatMessage(ext string) string {
	if ext != "" {
		ext = "." + ext
	}
	return fmt.Sprintf("Could not parse file with extension %s. Supported formats are PDF, DOCX, XLSX, XLS, CSV, and text files.", ext)
}
