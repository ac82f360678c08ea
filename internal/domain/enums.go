package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLS  FileType = "xls"
	FileTypeCSV  FileType = "csv"
	FileTypeTXT  FileType = "txt"
	FileTypeMD   FileType = "md"
	FileTypeHTML FileType = "html"
	FileTypeHTM  FileType = "htm"
	FileTypeJPG  FileType = "jpg"
	FileTypeJPEG FileType = "jpeg"
	FileTypePNG  FileType = "png"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
// Uploads with any other extension are rejected before they are stored.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"xlsx": FileTypeXLSX,
	"xls":  FileTypeXLS,
	"csv":  FileTypeCSV,
	"txt":  FileTypeTXT,
	"md":   FileTypeMD,
	"html": FileTypeHTML,
	"htm":  FileTypeHTM,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPEG,
	"png":  FileTypePNG,
}

// ContentTypes maps FileType to the MIME type used when storing the upload.
var ContentTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLS:  "application/vnd.ms-excel",
	FileTypeCSV:  "text/csv",
	FileTypeTXT:  "text/plain",
	FileTypeMD:   "text/markdown",
	FileTypeHTML: "text/html",
	FileTypeHTM:  "text/html",
	FileTypeJPG:  "image/jpeg",
	FileTypeJPEG: "image/jpeg",
	FileTypePNG:  "image/png",
}

// UploadStatus represents the lifecycle of an uploaded document.
type UploadStatus string

const (
	UploadStatusUploaded UploadStatus = "uploaded"
)

// Model identifiers accepted by the completion backend.
const (
	ModelGPT4o     = "gpt-4o"
	ModelGPT4oMini = "gpt-4o-mini"
)

// Model describes a selectable completion model.
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableModels is the fixed, ordered model catalog.
var AvailableModels = []Model{
	{ID: ModelGPT4o, Name: "GPT-4o"},
	{ID: ModelGPT4oMini, Name: "GPT-4o Mini"},
}

// IsSupportedModel reports whether id is in the model catalog.
func IsSupportedModel(id string) bool {
	for _, m := range AvailableModels {
		if m.ID == id {
			return true
		}
	}
	return false
}

// ModelName returns the display name for id, or id itself when unknown.
func ModelName(id string) string {
	for _, m := range AvailableModels {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}
