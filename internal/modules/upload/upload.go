package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/folio-space/core/internal/pkg/assetpath"
	"github.com/google/uuid"
)

// Rejection reasons. The HTTP layer maps all of them to 400 with a
// policy-specific message.
var (
	ErrFileMissing = errors.New("no file supplied")
	ErrTooLarge    = errors.New("payload too large")
	ErrBadType     = errors.New("unsupported media type")
)

// Policy describes one upload endpoint: which multipart field it reads, what
// it accepts, and where accepted files land.
type Policy struct {
	Field   string
	Kind    assetpath.Kind
	PathKey string // response key carrying the returned path
	MaxSize int64

	accept     func(ext, mimeType string) bool
	missingMsg string
	sizeMsg    string
	typeMsg    string
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ImagePolicy accepts common web image formats up to 5 MB.
func ImagePolicy() Policy {
	return Policy{
		Field:   "image",
		Kind:    assetpath.Image,
		PathKey: "imagePath",
		MaxSize: 5 << 20,
		accept: func(ext, mimeType string) bool {
			return imageExts[ext] && strings.HasPrefix(mimeType, "image/")
		},
		missingMsg: "No file uploaded. Please select an image file.",
		sizeMsg:    "File too large. Maximum size is 5MB.",
		typeMsg:    "Only image files are allowed (jpg, jpeg, png, gif, webp, svg)",
	}
}

// PDFPolicy accepts PDFs up to 50 MB. Both the extension and the declared
// MIME type must pass.
func PDFPolicy() Policy {
	return Policy{
		Field:   "pdf",
		Kind:    assetpath.PDF,
		PathKey: "pdfPath",
		MaxSize: 50 << 20,
		accept: func(ext, mimeType string) bool {
			return ext == ".pdf" && strings.Contains(mimeType, "pdf")
		},
		missingMsg: "No file uploaded. Please select a PDF file.",
		sizeMsg:    "File too large. Maximum size is 50MB.",
		typeMsg:    "Only PDF files are allowed (.pdf extension required)",
	}
}

// Validate checks a received file against the policy. Nothing is written to
// disk before Validate passes.
func (p Policy) Validate(fh *multipart.FileHeader) error {
	if fh == nil {
		return ErrFileMissing
	}
	if fh.Size > p.MaxSize {
		return ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !p.accept(ext, fh.Header.Get("Content-Type")) {
		return ErrBadType
	}
	return nil
}

// Message translates a rejection into the caller-facing error text.
func (p Policy) Message(err error) string {
	switch {
	case errors.Is(err, ErrFileMissing):
		return p.missingMsg
	case errors.Is(err, ErrTooLarge):
		return p.sizeMsg
	case errors.Is(err, ErrBadType):
		return p.typeMsg
	default:
		return err.Error()
	}
}

// buildFileName keeps the original base name readable while making
// collisions between concurrent uploads of the same file practically
// impossible: {base}-{unix-ms}-{random}{ext}.
func buildFileName(original string) string {
	original = strings.TrimSpace(original)
	ext := strings.ToLower(filepath.Ext(original))
	base := sanitizeBase(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), suffix, ext)
}

func sanitizeBase(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
