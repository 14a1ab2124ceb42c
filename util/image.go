package util

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image decodes a "data:image/<ext>;base64,<payload>" string and
// writes it under dir, returning the stored file's relative path.
func SaveBase64Image(data, dir string) (string, error) {
	if !strings.HasPrefix(data, "data:image") {
		return "", errors.New("image must be a base64 data URI")
	}
	parts := strings.SplitN(data, ";base64,", 2)
	if len(parts) != 2 {
		return "", errors.New("malformed image data URI")
	}
	ext := parts[0][strings.LastIndex(parts[0], "/")+1:]
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	name := fmt.Sprintf("recipe_%d.%s", time.Now().UnixNano(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
