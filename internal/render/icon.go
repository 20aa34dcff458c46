package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// iconFetchLimit caps how many bytes an icon source may supply.
const iconFetchLimit = 8 << 20

// IconOverlay is the icon set on a style, already converted to an
// embeddable data URL. Its placement is computed at markup generation from
// the capacity metric and the current geometry.
type IconOverlay struct {
	DataURL string
}

// AddImage fetches an icon from a data URL, an http(s) URL, or a local
// path, validates that the bytes decode as an image, and stores it as the
// style's overlay for subsequent markup generation. On any failure the
// previously stored overlay is left untouched and the error wraps
// ErrIconLoad.
func (s *Style) AddImage(ctx context.Context, source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("%w: empty source", ErrIconLoad)
	}
	if strings.HasPrefix(source, "data:") {
		s.icon = &IconOverlay{DataURL: source}
		return nil
	}

	data, err := fetchIconBytes(ctx, source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIconLoad, err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrIconLoad, source, err)
	}

	mime := http.DetectContentType(data)
	s.icon = &IconOverlay{
		DataURL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}
	return nil
}

func fetchIconBytes(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, iconFetchLimit))
	}
	return os.ReadFile(source)
}
