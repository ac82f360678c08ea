package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"genaizone/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Model ID",
	"Model Name",
	"Status",
	"Response",
	"Prompt",
	"Document Count",
	"Created At",
}

// Writer wraps csv.Writer for exporting comparison results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteComparison writes one row per model response, in response order.
func (w *Writer) WriteComparison(c *domain.Comparison) error {
	for i := range c.Responses {
		if err := w.csv.Write(responseToRow(c, &c.Responses[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func responseToRow(c *domain.Comparison, r *domain.ModelResponse) []string {
	return []string{
		r.ModelID,
		r.ModelName,
		formatStatus(r.Failed),
		r.Response,
		c.Prompt,
		fmt.Sprintf("%d", c.DocumentCount),
		c.CreatedAt.Format(time.RFC3339),
	}
}

func formatStatus(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv, using the comparison's creation date.
func BuildFilename(name string, at time.Time) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "comparison"
	}
	return fmt.Sprintf("%s_%s.csv", sanitized, at.Format("2006-01-02"))
}
