package services

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/yeremiapane/menu-service/utils"
)

const (
	// MaxFileSize caps uploads at 5MB.
	MaxFileSize = 5 << 20
	// MaxDimension is the maximum width or height for stored images.
	MaxDimension = 1024
	// ThumbnailSize is the square edge of generated thumbnails.
	ThumbnailSize = 200
	// JPEGQuality is the compression quality for re-encoded output.
	JPEGQuality = 80
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageResult describes a processed and stored upload.
type ImageResult struct {
	Filename  string
	Path      string
	ThumbPath string
	MIME      string
	Size      int64
}

// ImageService validates, downscales and stores menu item images together
// with a square thumbnail. Output is always JPEG.
type ImageService struct {
	uploadDir string
	thumbDir  string
}

func NewImageService(uploadDir string) (*ImageService, error) {
	thumbDir := filepath.Join(uploadDir, "thumbnails")
	for _, dir := range []string{uploadDir, thumbDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
		}
	}
	return &ImageService{uploadDir: uploadDir, thumbDir: thumbDir}, nil
}

// Save reads image data, sniffs the real MIME type, downscales anything
// larger than MaxDimension and writes a JPEG plus its thumbnail.
func (s *ImageService) Save(r io.Reader, originalName string) (*ImageResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, &utils.AppError{
			Status:  http.StatusBadRequest,
			Code:    "FILE_TOO_LARGE",
			Message: "File size exceeds limit",
		}
	}

	// Sniff the actual type from the bytes, not the client headers.
	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, &utils.AppError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_FILE_TYPE",
			Message: fmt.Sprintf("unsupported image format: %s", detected),
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &utils.AppError{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_FILE_TYPE",
			Message: "could not decode image",
		}
	}

	filename := uniqueFilename(originalName)
	mainPath := filepath.Join(s.uploadDir, filename)
	thumbPath := filepath.Join(s.thumbDir, "thumb-"+filename)

	if err := encodeJPEG(mainPath, downscale(img, MaxDimension)); err != nil {
		return nil, err
	}
	if err := encodeJPEG(thumbPath, squareThumbnail(img, ThumbnailSize)); err != nil {
		os.Remove(mainPath)
		return nil, err
	}

	info, err := os.Stat(mainPath)
	if err != nil {
		return nil, fmt.Errorf("stat stored image: %w", err)
	}

	return &ImageResult{
		Filename:  filename,
		Path:      mainPath,
		ThumbPath: thumbPath,
		MIME:      "image/jpeg",
		Size:      info.Size(),
	}, nil
}

// Delete removes an image and its thumbnail. Missing files are ignored.
func (s *ImageService) Delete(filename string) {
	os.Remove(filepath.Join(s.uploadDir, filename))
	os.Remove(filepath.Join(s.thumbDir, "thumb-"+filename))
}

func uniqueFilename(originalName string) string {
	now := time.Now().UnixNano()
	sum := md5.Sum([]byte(fmt.Sprintf("%s%d", originalName, now)))
	return fmt.Sprintf("%s-%d.jpg", hex.EncodeToString(sum[:])[:8], now)
}

func encodeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("encoding JPEG: %w", err)
	}
	return nil
}

// downscale resizes so neither dimension exceeds maxDim, preserving aspect
// ratio. Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := maxDim, maxDim
	if w > h {
		newH = h * maxDim / w
	} else {
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// squareThumbnail center-crops to a square and scales it down to size.
func squareThumbnail(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	side := w
	if h < side {
		side = h
	}
	x0 := bounds.Min.X + (w-side)/2
	y0 := bounds.Min.Y + (h-side)/2
	src := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}
