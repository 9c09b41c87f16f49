package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Maximum accepted upload size (10MB)
	MaxUploadSize = 10 * 1024 * 1024
	// Uploads wider than this are downscaled before forwarding upstream
	maxImageWidth = 1920
)

// Allowed image extensions
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// ValidateImageType checks that the file extension is an accepted image type.
func ValidateImageType(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image format. Allowed formats: jpg, jpeg, png, gif, svg, webp")
	}
	return nil
}

// ReadFormFile validates and reads one uploaded file into memory.
func ReadFormFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxUploadSize {
		return nil, fmt.Errorf("file too large. Maximum size is %d bytes", MaxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}

// DownscaleImage resizes an oversized raster upload to maxImageWidth while
// keeping the aspect ratio, so the console never pushes multi-megapixel
// originals at the platform. SVG and GIF pass through untouched.
func DownscaleImage(data []byte, filename string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".svg" || ext == ".gif" {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		// Not decodable as a raster image; forward as received.
		return data, nil
	}

	if img.Bounds().Dx() <= maxImageWidth {
		return data, nil
	}

	resized := imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	switch ext {
	case ".png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %v", err)
		}
	default:
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %v", err)
		}
	}
	return buf.Bytes(), nil
}
