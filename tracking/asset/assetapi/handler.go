package assetapi

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/roster-ats/roster/tracking/asset"
	"github.com/roster-ats/roster/tracking/asset/assetsrv"
)

// Handlers provides HTTP handlers for resume file operations
type Handlers struct {
	manager *assetsrv.AssetManager
}

// NewHandlers creates a new asset handlers instance
func NewHandlers(manager *assetsrv.AssetManager) *Handlers {
	return &Handlers{
		manager: manager,
	}
}

// UploadResume stores an uploaded resume file
// POST /api/upload-resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return asset.ErrNoFile().WithDetail("file_error", err.Error())
	}

	fileContent, err := file.Open()
	if err != nil {
		return asset.ErrNoFile().WithDetail("file_open_error", err.Error())
	}
	defer fileContent.Close()

	fileData, err := io.ReadAll(fileContent)
	if err != nil {
		return asset.ErrNoFile().WithDetail("file_read_error", err.Error())
	}

	stored, err := h.manager.Store(
		c.Context(),
		fileData,
		c.FormValue("fileName"),
		file.Filename,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"filePath":     stored.FilePath,
		"fileName":     stored.FileName,
		"originalName": stored.OriginalName,
		"pages":        stored.Pages,
	})
}

// RegisterRoutes registers all asset routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/api/upload-resume", handlers.UploadResume)
	app.Get("/applications/:file", handlers.serveResume)
	app.Get("/public/applications/:file", handlers.serveResume)
}

// serveResume streams a stored resume file as raw bytes
func (h *Handlers) serveResume(c *fiber.Ctx) error {
	fileName := c.Params("file")
	if fileName == "" {
		return asset.ErrAssetNotFound()
	}

	stream, err := h.manager.Open(c.Context(), fileName)
	if err != nil {
		return err
	}

	if ext := strings.TrimPrefix(filepath.Ext(fileName), "."); ext != "" {
		c.Type(ext)
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	}
	return c.SendStream(stream)
}
