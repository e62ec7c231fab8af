package images

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidPayload = errors.New("invalid image payload")

// extensions by data-URL media type; plain base64 without a prefix defaults
// to jpeg, matching what frontends send in practice.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SaveBase64 decodes a base64 image payload (optionally a data URL like
// "data:image/png;base64,....") and writes it under dir/subdir with a
// uuid-based filename. Returns the path relative to dir.
func SaveBase64(payload, dir, subdir string) (string, error) {
	ext := ".jpg"
	raw := payload

	if strings.HasPrefix(payload, "data:") {
		mediaType, rest, ok := strings.Cut(strings.TrimPrefix(payload, "data:"), ";base64,")
		if !ok {
			return "", ErrInvalidPayload
		}
		if e, known := extByType[mediaType]; known {
			ext = e
		}
		raw = rest
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", ErrInvalidPayload
	}
	if len(data) == 0 {
		return "", ErrInvalidPayload
	}

	if err := os.MkdirAll(filepath.Join(dir, subdir), 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	rel := filepath.Join(subdir, name)
	if err := os.WriteFile(filepath.Join(dir, rel), data, 0o644); err != nil {
		return "", err
	}
	return rel, nil
}
