package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

// PageCount reports the number of pages in a PDF document
func PageCount(pdfData []byte) (int, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	return doc.NumPage(), nil
}
