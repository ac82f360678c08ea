package parser_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"genaizone/internal/parser"
)

func newNormalizer() *parser.Normalizer {
	return parser.NewNormalizer(parser.NewDefaultRegistry())
}

func TestNormalize_PDF_PagesInOrder(t *testing.T) {
	path := writeFile(t, "report.pdf", buildPDF([]string{"Hello page one", "", "Hello page three"}))

	out := newNormalizer().Normalize(context.Background(), path, "pdf")

	require.NotContains(t, out, "Error parsing document")
	first := strings.Index(out, "Hello page one")
	third := strings.Index(out, "Hello page three")
	require.GreaterOrEqual(t, first, 0, out)
	require.Greater(t, third, first, out)

	// The empty middle page still contributes its own block.
	assert.Contains(t, out[first:third], "\n\n\n\n")
}

func TestNormalize_PDF_Corrupt(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("this is not a pdf"))

	out := newNormalizer().Normalize(context.Background(), path, "pdf")

	assert.True(t, strings.HasPrefix(out, "Error parsing document: "), out)
}

func TestNormalize_DOCX_TopLevelParagraphs(t *testing.T) {
	body := `<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">Second </w:t></w:r><w:r><w:t>paragraph</w:t><w:tab/><w:t>tabbed</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>in a table</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>Last</w:t><w:br/><w:t>line</w:t></w:r></w:p>` +
		`<w:sectPr/>`
	path := writeFile(t, "memo.docx", buildDOCX(t, body))

	out := newNormalizer().Normalize(context.Background(), path, "docx")

	assert.Equal(t, "First paragraph\nSecond paragraph\ttabbed\n\nLast\nline", out)
}

func TestNormalize_DOCX_NotAZip(t *testing.T) {
	path := writeFile(t, "memo.docx", []byte("plain bytes"))

	out := newNormalizer().Normalize(context.Background(), path, "docx")

	assert.True(t, strings.HasPrefix(out, "Error parsing document: "), out)
}

func TestNormalize_XLSX_SheetsAndRowsInOrder(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"name", "qty"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"apple", 3}))
	_, err := f.NewSheet("Prices")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Prices", "A1", &[]interface{}{"item", "price"}))
	require.NoError(t, f.SetSheetRow("Prices", "A2", &[]interface{}{"pear", 1.5}))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	out := newNormalizer().Normalize(context.Background(), path, "xlsx")

	assert.Equal(t,
		"Sheet: Sheet1\nname   qty\napple  3\n\nSheet: Prices\nitem  price\npear  1.5\n\n",
		out)
}

func TestNormalize_XLS_LegacyWorkbook(t *testing.T) {
	path := writeFile(t, "old.xls", buildXLS([]legacySheet{
		{name: "Sheet1", rows: [][]string{{"name", "qty"}, {"apple", "3"}}},
		{name: "Prices", rows: [][]string{{"item", "price"}, {"pear", "1.5"}}},
	}))

	out := newNormalizer().Normalize(context.Background(), path, "xls")

	assert.Equal(t, "Sheet: Sheet1\nname\tqty\napple\t3\n\nSheet: Prices\nitem\tprice\npear\t1.5\n\n", out)
}

func TestNormalize_XLS_OOXMLWithOldExtension(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"k", "v"}))
	path := filepath.Join(t.TempDir(), "renamed.xls")
	require.NoError(t, f.SaveAs(path))

	out := newNormalizer().Normalize(context.Background(), path, "xls")

	assert.Equal(t, "Sheet: Sheet1\nk  v\n\n", out)
}

func TestNormalize_XLS_TruncatedReportsError(t *testing.T) {
	path := writeFile(t, "old.xls", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00, 0x00})

	out := newNormalizer().Normalize(context.Background(), path, "xls")

	assert.True(t, strings.HasPrefix(out, "Error parsing document: "), out)
	assert.Contains(t, out, "all strategies failed")
}

func TestNormalize_CSV_RendersTable(t *testing.T) {
	path := writeFile(t, "people.csv", []byte("name,age\nbob,30\nalice,7\n"))

	out := newNormalizer().Normalize(context.Background(), path, "csv")

	assert.Equal(t, "name   age\nbob    30\nalice  7", out)
}

func TestNormalize_CSV_MalformedFallsBackToText(t *testing.T) {
	raw := "a,b\n1,\"unclosed\n"
	path := writeFile(t, "bad.csv", []byte(raw))

	out := newNormalizer().Normalize(context.Background(), path, "csv")

	assert.Equal(t, raw, out)
}

func TestNormalize_Text_InvalidBytesReplaced(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte{'a', 0xff, 'b', '\n'})

	out := newNormalizer().Normalize(context.Background(), path, "txt")

	assert.Equal(t, "a�b\n", out)
}

func TestNormalize_MarkupReadVerbatim(t *testing.T) {
	for _, ext := range []string{"md", "html", "htm"} {
		content := "<h1>Title</h1>\n# heading"
		path := writeFile(t, "page."+ext, []byte(content))

		out := newNormalizer().Normalize(context.Background(), path, ext)

		assert.Equal(t, content, out, ext)
	}
}

func TestNormalize_ImagePlaceholder(t *testing.T) {
	// Images are never opened, so the file need not exist.
	path := filepath.Join(t.TempDir(), "photo.PNG")

	out := newNormalizer().Normalize(context.Background(), path, "")

	assert.Equal(t, "[Image file: photo.PNG]", out)
}

func TestNormalize_ExtensionFromPathIsCaseInsensitive(t *testing.T) {
	path := writeFile(t, "README.TXT", []byte("hello"))

	out := newNormalizer().Normalize(context.Background(), path, "")

	assert.Equal(t, "hello", out)
}

func TestNormalize_UnknownExtensionReadAsText(t *testing.T) {
	path := writeFile(t, "data.xyz", []byte("some text"))

	out := newNormalizer().Normalize(context.Background(), path, "xyz")

	assert.Equal(t, "some text", out)
}

func TestNormalize_UnknownExtensionUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xyz")

	out := newNormalizer().Normalize(context.Background(), path, "xyz")

	assert.Equal(t, "Could not parse file with extension .xyz. Supported formats are PDF, DOCX, XLSX, XLS, CSV, and text files.", out)
}

func TestNormalize_MissingKnownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")

	out := newNormalizer().Normalize(context.Background(), path, "txt")

	assert.True(t, strings.HasPrefix(out, "Error parsing document: "), out)
}

func TestNormalize_PanicBecomesErrorNote(t *testing.T) {
	r := parser.NewRegistry()
	r.Register(".boom", parser.StrategyFunc(func(context.Context, string) (string, error) {
		panic("kaboom")
	}))

	out := parser.NewNormalizer(r).Normalize(context.Background(), "x.boom", "")

	assert.Equal(t, "Error parsing document: kaboom", out)
}

func TestNormalize_DeclaredExtensionWins(t *testing.T) {
	// Stored under a neutral name, declared as CSV.
	path := writeFile(t, "upload.bin", []byte("x,y\n1,2\n"))

	out := newNormalizer().Normalize(context.Background(), path, ".CSV")

	assert.Equal(t, "x  y\n1  2", out)
}

func TestRegistry_LookupNormalizes(t *testing.T) {
	r := parser.NewDefaultRegistry()
	for _, ext := range []string{"pdf", ".PDF", " Docx ", "xls", "htm", "jpeg"} {
		_, ok := r.Lookup(ext)
		assert.True(t, ok, ext)
	}
	_, ok := r.Lookup("exe")
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Error parsing document: bad header", parser.ErrorMessage(errors.New("bad header")))
	assert.Contains(t, parser.UnsupportedFormatMessage("zip"), "extension .zip.")
	assert.Contains(t, parser.UnsupportedFormatMessage(""), "extension .")
}
