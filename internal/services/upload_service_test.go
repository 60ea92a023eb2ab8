package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// fileHeader builds a real multipart.FileHeader by round-tripping a form.
func fileHeader(t *testing.T, field, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func unconfiguredMedia(t *testing.T) *storage.MediaStore {
	t.Helper()
	media, err := storage.NewMediaStore(context.Background(), storage.Options{})
	require.NoError(t, err)
	require.False(t, media.Configured())
	return media
}

func TestUploadOne_InlineFallback(t *testing.T) {
	svc := NewUploadService(unconfiguredMedia(t), 5)

	fh := fileHeader(t, "image", "avatar.png", pngBytes(t, 2, 3))
	res, err := svc.UploadOne(context.Background(), fh)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.True(t, strings.HasPrefix(res.URL, "data:"), "expected a data URL, got %q", res.URL)
	assert.Contains(t, res.URL, ";base64,")
	assert.Empty(t, res.PublicID)
	assert.Equal(t, 2, res.Width)
	assert.Equal(t, 3, res.Height)
	assert.Equal(t, "png", res.Format)
}

func TestUploadOne_TooLarge(t *testing.T) {
	svc := NewUploadService(unconfiguredMedia(t), 1)

	fh := fileHeader(t, "image", "huge.bin", make([]byte, 2<<20))
	_, err := svc.UploadOne(context.Background(), fh)
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.CodePayloadTooLarge))
}

func TestUploadMany_InlineFallback(t *testing.T) {
	svc := NewUploadService(unconfiguredMedia(t), 5)

	files := []*multipart.FileHeader{
		fileHeader(t, "images", "a.png", pngBytes(t, 1, 1)),
		fileHeader(t, "images", "b.png", pngBytes(t, 4, 4)),
	}
	results, err := svc.UploadMany(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results keep input order.
	assert.Equal(t, 1, results[0].Width)
	assert.Equal(t, 4, results[1].Width)
	for _, r := range results {
		assert.True(t, r.Fallback)
	}
}

func TestUploadMany_OneOversizedFailsBatch(t *testing.T) {
	svc := NewUploadService(unconfiguredMedia(t), 1)

	files := []*multipart.FileHeader{
		fileHeader(t, "images", "ok.png", pngBytes(t, 1, 1)),
		fileHeader(t, "images", "huge.bin", make([]byte, 2<<20)),
	}
	_, err := svc.UploadMany(context.Background(), files)
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.CodePayloadTooLarge))
}

func TestInlineDataURL(t *testing.T) {
	url := inlineDataURL([]byte("hi"), "text/plain")
	assert.Equal(t, "data:text/plain;base64,aGk=", url)
}

func TestProbeImage(t *testing.T) {
	w, h, format := probeImage(pngBytes(t, 7, 9), "image/png")
	assert.Equal(t, 7, w)
	assert.Equal(t, 9, h)
	assert.Equal(t, "png", format)

	// Non-image payloads keep zero dimensions and take the format from the
	// mime subtype.
	w, h, format = probeImage([]byte("not an image"), "image/webp")
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Equal(t, "webp", format)

	_, _, format = probeImage([]byte("noise"), "garbage")
	assert.Empty(t, format)
}
