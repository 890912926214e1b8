package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the upload limit for kitchen plans and CVs.
const MaxFileSize int64 = 10 << 20

var (
	ErrFileTooLarge        = errors.New("file exceeds 10 MB")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Allowed extensions per upload field.
var (
	KitchenPlanExtensions = []string{".jpg", ".jpeg", ".png", ".pdf", ".dwg", ".dxf"}
	CVExtensions          = []string{".pdf", ".doc", ".docx"}
)

// Attachment describes a stored upload.
type Attachment struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Store persists uploaded files and returns where they ended up.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// Check validates an upload by declared size and extension only; content is
// not inspected.
func Check(name string, size int64, allowed []string) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return ErrUnsupportedFileType
}

// Message is the field error shown for a rejected upload.
func Message(err error, allowed []string) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "File is too large. Maximum size is 10MB."
	case errors.Is(err, ErrUnsupportedFileType):
		return "Unsupported file type. Accepted: " + strings.Join(allowed, ", ")
	default:
		return "File could not be uploaded."
	}
}

// NewKey builds a collision-free object key under prefix that keeps the
// original extension.
func NewKey(prefix, name string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.NewString(), strings.ToLower(filepath.Ext(name)))
}

// SaveForm checks and stores a multipart upload.
func SaveForm(ctx context.Context, store Store, file *multipart.FileHeader, prefix string, allowed []string) (Attachment, error) {
	if err := Check(file.Filename, file.Size, allowed); err != nil {
		return Attachment{}, err
	}
	f, err := file.Open()
	if err != nil {
		return Attachment{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	contentType := file.Header.Get("Content-Type")
	key := NewKey(prefix, file.Filename)
	location, err := store.Put(ctx, key, f, contentType)
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{
		Name:        filepath.Base(file.Filename),
		Key:         key,
		Size:        file.Size,
		ContentType: contentType,
		Location:    location,
	}, nil
}
