package assetsrv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-ats/roster/pkg/errx"
	"github.com/roster-ats/roster/pkg/fsx/fsxlocal"
	"github.com/roster-ats/roster/tracking/asset"
)

var pdfBytes = []byte("%PDF-1.4 test resume content")

func newManager(t *testing.T) (*AssetManager, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := fsxlocal.NewLocalFileSystem(dir)
	require.NoError(t, err)
	return NewAssetManager(fs), dir
}

func TestStoreWithRequestedName(t *testing.T) {
	m, dir := newManager(t)

	stored, err := m.Store(context.Background(), pdfBytes, "jane-doe.pdf", "resume.pdf", asset.ContentTypePDF)
	require.NoError(t, err)

	assert.Equal(t, "jane-doe.pdf", stored.FileName)
	assert.Equal(t, "applications/jane-doe.pdf", stored.FilePath)
	assert.Equal(t, "resume.pdf", stored.OriginalName)

	data, err := os.ReadFile(filepath.Join(dir, "jane-doe.pdf"))
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, data)
}

func TestStoreGeneratesTimestampedName(t *testing.T) {
	m, dir := newManager(t)
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }

	stored, err := m.Store(context.Background(), pdfBytes, "", "resume.pdf", asset.ContentTypePDF)
	require.NoError(t, err)

	assert.Equal(t, "1700000000000-resume.pdf", stored.FileName)
	assert.Equal(t, "applications/1700000000000-resume.pdf", stored.FilePath)

	_, err = os.Stat(filepath.Join(dir, "1700000000000-resume.pdf"))
	assert.NoError(t, err)
}

func TestStoreRejectsNonPDF(t *testing.T) {
	m, dir := newManager(t)

	_, err := m.Store(context.Background(), []byte("plain text"), "", "notes.txt", "text/plain")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	// Nothing was written
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteIfExists(t *testing.T) {
	m, dir := newManager(t)
	ctx := context.Background()

	stored, err := m.Store(ctx, pdfBytes, "cv.pdf", "cv.pdf", asset.ContentTypePDF)
	require.NoError(t, err)

	require.NoError(t, m.DeleteIfExists(ctx, stored.FilePath))
	_, err = os.Stat(filepath.Join(dir, "cv.pdf"))
	assert.True(t, os.IsNotExist(err))

	// Idempotent: deleting again is not an error
	assert.NoError(t, m.DeleteIfExists(ctx, stored.FilePath))

	// Empty path is a no-op
	assert.NoError(t, m.DeleteIfExists(ctx, ""))
}

func TestDeleteIfExistsAcceptsPathVariants(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	for _, form := range []string{
		"cv.pdf",
		"applications/cv.pdf",
		"/public/applications/cv.pdf",
	} {
		_, err := m.Store(ctx, pdfBytes, "cv.pdf", "cv.pdf", asset.ContentTypePDF)
		require.NoError(t, err)

		require.NoError(t, m.DeleteIfExists(ctx, form), "form %q", form)

		_, err = m.Open(ctx, "cv.pdf")
		assert.True(t, errx.IsType(err, errx.TypeNotFound), "form %q", form)
	}
}

func TestOpenMissingFile(t *testing.T) {
	m, _ := newManager(t)

	_, err := m.Open(context.Background(), "nope.pdf")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
