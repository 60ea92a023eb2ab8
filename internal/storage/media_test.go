package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMediaStore_IncompleteCredentials(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"all empty", Options{}},
		{"missing secret", Options{Endpoint: "minio:9000", AccessKey: "key", Bucket: "media"}},
		{"missing access key", Options{Endpoint: "minio:9000", SecretKey: "secret", Bucket: "media"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewMediaStore(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.False(t, store.Configured())
		})
	}
}

func TestConfigured_NilStore(t *testing.T) {
	var store *MediaStore
	assert.False(t, store.Configured())
}

func TestObjectURL(t *testing.T) {
	store := &MediaStore{opts: Options{Endpoint: "minio:9000", Bucket: "media"}}
	assert.Equal(t, "http://minio:9000/media/pic.png", store.ObjectURL("pic.png"))

	store.opts.UseSSL = true
	assert.Equal(t, "https://minio:9000/media/pic.png", store.ObjectURL("pic.png"))

	store.opts.PublicURL = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/media/pic.png", store.ObjectURL("pic.png"))
}

func TestObjectURL_EscapesObjectName(t *testing.T) {
	store := &MediaStore{opts: Options{Endpoint: "minio:9000", Bucket: "media"}}
	assert.Equal(t,
		"http://minio:9000/media/my%20photo.png",
		store.ObjectURL("my photo.png"))
}
