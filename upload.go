package portfolio

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxUploadSize = 16 << 20 // 16 MiB
	maxThumbWidth = 480
	jpegQuality   = 80
)

// One capability-tagged allow-list per asset kind.
var (
	paperExts = map[string]bool{".pdf": true}
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}
)

// SavePaper validates an uploaded paper, writes it to the papers directory
// under a timestamp-prefixed name, and appends a PaperRecord to the content
// store. Validation failures happen before any byte hits disk.
func (a *App) SavePaper(name string, data []byte, title, description string) (PaperRecord, error) {
	if len(data) == 0 {
		return PaperRecord{}, validationf("no paper file provided")
	}
	if len(data) > maxUploadSize {
		return PaperRecord{}, validationf("file too large (max 16 MB)")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !paperExts[ext] {
		return PaperRecord{}, validationf("file type %q not allowed for papers", ext)
	}

	now := time.Now()
	stored := storedFilename(name, now)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	if err := os.MkdirAll(a.papersDir(), 0o755); err != nil {
		return PaperRecord{}, &StorageError{Op: "write", Err: err}
	}
	if err := os.WriteFile(filepath.Join(a.papersDir(), stored), data, 0o644); err != nil {
		return PaperRecord{}, &StorageError{Op: "write", Err: err}
	}

	rec := PaperRecord{
		ID:          NewID(),
		Title:       title,
		Description: description,
		Filename:    stored,
		UploadDate:  now.Format(timestampLayout),
		Type:        TypePaper,
	}
	// If the metadata save fails the written file stays orphaned; there is
	// no rollback at this scale.
	if err := a.Store.Update(func(cs *ContentStore) error {
		cs.Papers = append(cs.Papers, rec)
		return nil
	}); err != nil {
		return PaperRecord{}, err
	}
	return rec, nil
}

// SaveImage validates an uploaded image and writes it, bytes unmodified, to
// the uploads directory. A scaled JPEG thumbnail is written beside it on a
// best-effort basis. Images carry no content record.
func (a *App) SaveImage(name string, data []byte) (ImageInfo, error) {
	if len(data) == 0 {
		return ImageInfo{}, validationf("no image file provided")
	}
	if len(data) > maxUploadSize {
		return ImageInfo{}, validationf("file too large (max 16 MB)")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !imageExts[ext] {
		return ImageInfo{}, validationf("file type %q not allowed for images", ext)
	}

	stored := storedFilename(name, time.Now())
	if err := os.MkdirAll(a.uploadsDir(), 0o755); err != nil {
		return ImageInfo{}, &StorageError{Op: "write", Err: err}
	}
	if err := os.WriteFile(filepath.Join(a.uploadsDir(), stored), data, 0o644); err != nil {
		return ImageInfo{}, &StorageError{Op: "write", Err: err}
	}

	info := ImageInfo{
		Filename: stored,
		Path:     "/public/uploads/" + stored,
		Size:     int64(len(data)),
	}
	info.Width, info.Height = a.writeThumbnail(stored, data)
	return info, nil
}

// writeThumbnail decodes the uploaded image and writes a scaled JPEG copy
// under uploads/thumbs. The upload already succeeded, so decode or write
// failures are swallowed and zero dimensions returned.
func (a *App) writeThumbnail(stored string, data []byte) (int, int) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	thumb := img
	if w > maxThumbWidth {
		newH := h * maxThumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		thumb = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return w, h
	}
	if err := os.MkdirAll(a.thumbsDir(), 0o755); err != nil {
		return w, h
	}
	thumbName := strings.TrimSuffix(stored, filepath.Ext(stored)) + ".jpg"
	_ = os.WriteFile(filepath.Join(a.thumbsDir(), thumbName), buf.Bytes(), 0o644)
	return w, h
}

func (a *App) handlePaperUpload(c echo.Context) error {
	data, name, err := readUpload(c, "paper")
	if err != nil {
		return jsonError(c, err)
	}
	rec, err := a.SavePaper(name, data, strings.TrimSpace(c.FormValue("title")), strings.TrimSpace(c.FormValue("description")))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "paper": rec})
}

func (a *App) handleImageUpload(c echo.Context) error {
	data, name, err := readUpload(c, "image")
	if err != nil {
		return jsonError(c, err)
	}
	info, err := a.SaveImage(name, data)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "filename": info.Filename, "path": info.Path})
}

// readUpload pulls one multipart file out of the request, enforcing the size
// ceiling before buffering the content.
func readUpload(c echo.Context, field string) ([]byte, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", validationf("no %s file provided", field)
	}
	if file.Size > maxUploadSize {
		return nil, "", validationf("file too large (max 16 MB)")
	}
	src, err := file.Open()
	if err != nil {
		return nil, "", &StorageError{Op: "write", Err: err}
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return nil, "", &StorageError{Op: "write", Err: err}
	}
	if len(data) > maxUploadSize {
		return nil, "", validationf("file too large (max 16 MB)")
	}
	return data, file.Filename, nil
}
