package asset

// ContentTypePDF is the only declared content type accepted for resumes
const ContentTypePDF = "application/pdf"

// StoredAsset describes a persisted resume file. FilePath is the
// server-relative path clients can fetch it from; FileName is the name the
// bytes were stored under inside the asset directory.
type StoredAsset struct {
	FilePath     string `json:"filePath"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Pages        int    `json:"pages,omitempty"`
}
