package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrFileType     = errors.New("only image files are allowed")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

// MaxBytes is the default upload size cap (5 MiB).
const MaxBytes = 5 * 1024 * 1024

// allowedTypes lists the image content types accepted for profile uploads.
var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// Receiver validates uploaded files and writes them into Dir under a
// timestamp-prefixed name so repeated uploads of the same filename never
// collide. Stored files are never deleted.
type Receiver struct {
	Dir      string
	MaxBytes int64
}

func NewReceiver(dir string) *Receiver {
	return &Receiver{Dir: dir, MaxBytes: MaxBytes}
}

// Save checks the file's declared content type and size, then stores it and
// returns the path of the written file. Validation failures are reported as
// ErrFileType or ErrFileTooLarge so callers can answer with a client error.
func (r *Receiver) Save(file *multipart.FileHeader) (string, error) {
	if !allowedTypes[contentType(file)] {
		return "", ErrFileType
	}
	if r.MaxBytes > 0 && file.Size > r.MaxBytes {
		return "", ErrFileTooLarge
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dest := filepath.Join(r.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return dest, nil
}

func contentType(file *multipart.FileHeader) string {
	ct := file.Header.Get("Content-Type")
	// strip parameters like charset
	if idx := strings.Index(ct, ";"); idx > 0 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
