// Package uploads stores operator-uploaded logo images on disk and hands
// back the public URL they are served under.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 5 * 1024 * 1024

// URLPrefix is the static path the upload directory is served under.
const URLPrefix = "/assets/logos"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".svg":  true,
	".webp": true,
}

// Saver writes logos into a directory with collision-resistant filenames.
type Saver struct {
	dir string
}

func NewSaver(dir string) *Saver {
	return &Saver{dir: dir}
}

// SaveLogo validates and stores one uploaded logo, returning its public URL.
// Files over 5MB or with a non-image extension are rejected.
func (s *Saver) SaveLogo(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", fmt.Errorf("file %s exceeds the 5MB size limit", fileHeader.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("only image files are allowed (jpeg, jpg, png, svg, webp)")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := fmt.Sprintf("logo_%s%s", uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return URLPrefix + "/" + filename, nil
}
