package infra

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fitin/storefront/internal/config"
	inErrors "github.com/fitin/storefront/internal/errors"
	"github.com/fitin/storefront/internal/log"
)

// MediaStore persists binary image content and returns a publicly
// resolvable download URL for it.
type MediaStore interface {
	Put(c context.Context, path string, data []byte) (string, error)
}

type FileMediaStore struct {
	root    string
	baseURL string
}

func NewFileMediaStore(cfg config.Media) *FileMediaStore {
	return &FileMediaStore{root: cfg.Root, baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}
}

func (s *FileMediaStore) Put(c context.Context, path string, data []byte) (string, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "FileMediaStore Put").
		Str(log.KeyImagePath, path).
		Logger()

	fullPath := filepath.Join(s.root, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(fullPath), 0o755)
	if err != nil {
		err = fmt.Errorf("failed creating media directory with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}

	err = os.WriteFile(fullPath, data, 0o644)
	if err != nil {
		err = fmt.Errorf("failed writing media file with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}

	return s.baseURL + "/" + path, nil
}

func (s *FileMediaStore) Root() string {
	return s.root
}

// ParseDataURL decodes a base64 data URL into its raw bytes and file
// extension, e.g. "data:image/png;base64,iVBOR..." -> bytes, "png".
func ParseDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", inErrors.ErrInvalidDataURL
	}
	meta, encoded, found := strings.Cut(dataURL[len("data:"):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, "", inErrors.ErrInvalidDataURL
	}

	mediaType := strings.TrimSuffix(meta, ";base64")
	ext := "bin"
	if _, sub, ok := strings.Cut(mediaType, "/"); ok && sub != "" {
		ext = sub
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("failed decoding data url with error=%w", err)
	}
	return data, ext, nil
}
