package assetsrv

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/roster-ats/roster/internal/pdf"
	"github.com/roster-ats/roster/pkg/errx"
	"github.com/roster-ats/roster/pkg/fsx"
	"github.com/roster-ats/roster/pkg/logx"
	"github.com/roster-ats/roster/tracking/asset"
)

// publicPrefix is the URL path segment resume files are served under
const publicPrefix = "applications"

// AssetManager stores and removes uploaded resume files. Uploads are
// decoupled from applicant records: a resume can be stored before the record
// referencing it exists.
type AssetManager struct {
	fs  fsx.FileSystem
	now func() time.Time
}

// NewAssetManager creates a manager over the given asset filesystem
func NewAssetManager(fs fsx.FileSystem) *AssetManager {
	return &AssetManager{
		fs:  fs,
		now: time.Now,
	}
}

// Store persists data under requestedName when the caller supplied one,
// otherwise under "<unix-ms>-<originalName>". Uploads whose declared content
// type is not PDF are rejected before anything is written.
func (m *AssetManager) Store(ctx context.Context, data []byte, requestedName, originalName, contentType string) (*asset.StoredAsset, error) {
	if contentType != asset.ContentTypePDF {
		return nil, asset.ErrInvalidFileType().WithDetail("content_type", contentType)
	}

	fileName := requestedName
	if fileName == "" {
		fileName = fmt.Sprintf("%d-%s", m.now().UnixMilli(), originalName)
	}

	if err := m.fs.WriteFile(ctx, fileName, data); err != nil {
		return nil, errx.Wrap(err, "failed to store resume file", errx.TypeInternal)
	}

	// Page count is informational only; a file that fitz cannot open is
	// still stored and served as-is.
	pages, err := pdf.PageCount(data)
	if err != nil {
		logx.Debugf("could not count pages of %s: %v", fileName, err)
		pages = 0
	}

	return &asset.StoredAsset{
		FilePath:     path.Join(publicPrefix, fileName),
		FileName:     fileName,
		OriginalName: originalName,
		Pages:        pages,
	}, nil
}

// Open streams the stored file with the given name for static serving
func (m *AssetManager) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	stream, err := m.fs.ReadFileStream(ctx, path.Base(fileName))
	if fsx.IsNotFound(err) {
		return nil, asset.ErrAssetNotFound().WithDetail("file", fileName)
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to open resume file", errx.TypeInternal)
	}
	return stream, nil
}

// DeleteIfExists removes the file referenced by relPath. A missing file is
// not an error; deletion is idempotent. relPath may be any of the forms a
// record's resumePath carries ("name.pdf", "applications/name.pdf",
// "/public/applications/name.pdf"): assets are stored flat, so the base
// name is the storage key.
func (m *AssetManager) DeleteIfExists(ctx context.Context, relPath string) error {
	if relPath == "" {
		return nil
	}

	err := m.fs.DeleteFile(ctx, path.Base(relPath))
	if fsx.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return errx.Wrap(err, "failed to delete resume file", errx.TypeInternal)
	}
	return nil
}
