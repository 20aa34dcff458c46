package render

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestAddImageFromURL(t *testing.T) {
	data := tinyPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	s := NewStyle(21)
	require.NoError(t, s.AddImage(context.Background(), srv.URL+"/logo.png"))

	require.NotNil(t, s.Icon())
	assert.True(t, strings.HasPrefix(s.Icon().DataURL, "data:image/png;base64,"))
}

func TestAddImageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, tinyPNG(t), 0o644))

	s := NewStyle(21)
	require.NoError(t, s.AddImage(context.Background(), path))

	require.NotNil(t, s.Icon())
	assert.True(t, strings.HasPrefix(s.Icon().DataURL, "data:image/png;base64,"))
}

func TestAddImageDataURLStoredVerbatim(t *testing.T) {
	s := NewStyle(21)
	require.NoError(t, s.AddImage(context.Background(), "data:image/png;base64,dGVzdA=="))

	require.NotNil(t, s.Icon())
	assert.Equal(t, "data:image/png;base64,dGVzdA==", s.Icon().DataURL)
}

func TestAddImageUnreachableSourceLeavesOverlayUntouched(t *testing.T) {
	s := NewStyle(21)
	require.NoError(t, s.AddImage(context.Background(), "data:image/png;base64,a2VlcA=="))

	err := s.AddImage(context.Background(), "http://127.0.0.1:1/logo.png")
	assert.ErrorIs(t, err, ErrIconLoad)
	require.NotNil(t, s.Icon())
	assert.Equal(t, "data:image/png;base64,a2VlcA==", s.Icon().DataURL)
}

func TestAddImageHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := NewStyle(21)
	err := s.AddImage(context.Background(), srv.URL+"/missing.png")

	assert.ErrorIs(t, err, ErrIconLoad)
	assert.Nil(t, s.Icon())
}

func TestAddImageRejectsNonImageBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not an image"))
	}))
	defer srv.Close()

	s := NewStyle(21)
	err := s.AddImage(context.Background(), srv.URL+"/logo.png")

	assert.ErrorIs(t, err, ErrIconLoad)
	assert.Nil(t, s.Icon())
}

func TestAddImageMissingFile(t *testing.T) {
	s := NewStyle(21)
	err := s.AddImage(context.Background(), filepath.Join(t.TempDir(), "absent.png"))

	assert.ErrorIs(t, err, ErrIconLoad)
	assert.Nil(t, s.Icon())
}

func TestAddImageEmptySource(t *testing.T) {
	s := NewStyle(21)
	err := s.AddImage(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrIconLoad)
	assert.Nil(t, s.Icon())
}
