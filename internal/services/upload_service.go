package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the dimension/format probe.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/logger"
	"github.com/devport/portfolio-api/internal/storage"
	"github.com/devport/portfolio-api/internal/utils"
)

// UploadResult is the outcome of relaying one file. Fallback marks results
// that were inlined as data URLs because no media host is configured — no
// durable hosting occurred for those.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// UploadService relays image payloads to the media host, or inlines them
// when the host is unconfigured.
type UploadService struct {
	media    *storage.MediaStore
	maxBytes int64
}

func NewUploadService(media *storage.MediaStore, maxUploadMB int) *UploadService {
	return &UploadService{media: media, maxBytes: int64(maxUploadMB) << 20}
}

// UploadOne relays a single file. Oversized payloads fail with
// CodePayloadTooLarge before any bytes are read.
func (s *UploadService) UploadOne(ctx context.Context, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh.Size > s.maxBytes {
		return nil, errs.New(errs.CodePayloadTooLarge,
			fmt.Sprintf("file too large, maximum size is %dMB", s.maxBytes>>20))
	}

	file, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to read uploaded file")
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	width, height, format := probeImage(data, contentType)

	if !s.media.Configured() {
		return &UploadResult{
			URL:      inlineDataURL(data, contentType),
			Width:    width,
			Height:   height,
			Format:   format,
			Fallback: true,
		}, nil
	}

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(fh.Filename))

	// The payload goes through a temporary artifact which is removed on both
	// the success and failure paths.
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logger.L().Warn("failed to remove temp upload file",
				zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to write temp file")
	}

	url, err := s.media.PutFile(ctx, objectName, tmpPath, contentType)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to upload to media host")
	}

	return &UploadResult{
		URL:      url,
		PublicID: objectName,
		Width:    width,
		Height:   height,
		Format:   format,
	}, nil
}

// UploadMany relays files concurrently. One failing upload fails the whole
// batch. When the media host is unconfigured every item falls back to an
// inline data URL, the same policy as the single-file path.
func (s *UploadService) UploadMany(ctx context.Context, files []*multipart.FileHeader) ([]*UploadResult, error) {
	tasks := make([]utils.ParallelTask[*UploadResult], len(files))
	for i, fh := range files {
		fh := fh
		tasks[i] = func() (*UploadResult, error) {
			return s.UploadOne(ctx, fh)
		}
	}

	results, taskErrs := utils.RunParallel(tasks)
	if err := utils.FirstError(taskErrs); err != nil {
		return nil, err
	}
	return results, nil
}

// inlineDataURL encodes a payload as a self-contained data URL.
func inlineDataURL(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// probeImage extracts dimensions and format without a full decode. When the
// payload is not a decodable image, dimensions stay zero and the format is
// derived from the mime subtype.
func probeImage(data []byte, contentType string) (width, height int, format string) {
	cfg, fmtName, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		return cfg.Width, cfg.Height, fmtName
	}
	if idx := strings.IndexByte(contentType, '/'); idx >= 0 {
		return 0, 0, contentType[idx+1:]
	}
	return 0, 0, ""
}
