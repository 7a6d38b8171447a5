package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/xfmoulet/qoi"
)

// JPEGQuality is used whenever a fill result is written as JPEG.
const JPEGQuality = 95

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"tiff": "image/tiff",
	"bmp":  "image/bmp",
	"qoi":  "image/qoi",
}

// NormalizeFormat maps a format name or extension ("PNG", ".jpg", "tif")
// to one of the output format names: png, jpeg, gif, tiff, bmp, qoi.
func NormalizeFormat(name string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if ext == "qoi" {
		return "qoi", nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", fmt.Errorf("unsupported output format %q: %w", name, err)
	}
	return strings.ToLower(f.String()), nil
}

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (string, error) {
	return NormalizeFormat(filepath.Ext(path))
}

// MimeType returns the MIME type for a normalized format name.
func MimeType(format string) string {
	if m, ok := mimeTypes[format]; ok {
		return m
	}
	return "application/octet-stream"
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	if format == "qoi" {
		if err := qoi.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode qoi image: %w", err)
		}
		return nil
	}

	f, _ := imaging.FormatFromExtension(format)
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}

// EncodeBase64 encodes img and returns the payload as standard base64.
func EncodeBase64(img image.Image, format string) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Save writes img to path. An empty format is derived from the extension.
func Save(path string, img image.Image, format string) (err error) {
	if format == "" {
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return Encode(f, img, format)
}
