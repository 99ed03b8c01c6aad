package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	minThumbWidth = 16
	maxThumbWidth = 1600
	jpegQuality   = 80
)

// saveUpload stores u as a new blob and returns its id.
func (a *App) saveUpload(u *Upload) (string, error) {
	ct := u.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(u.Data)
	}
	id := uuid.NewString()
	if err := a.Store.SaveFile(StoredFile{
		ID:          id,
		Filename:    u.Filename,
		ContentType: ct,
		Data:        u.Data,
	}); err != nil {
		return "", err
	}
	return id, nil
}

// uploadURL stores u and returns its public URL under prefix ("/images/" or
// "/files/"). Without an upload, or when storing it fails, fallback is kept.
func (a *App) uploadURL(u *Upload, prefix, fallback string) string {
	if u == nil {
		return fallback
	}
	id, err := a.saveUpload(u)
	if err != nil {
		a.Log.Error("save upload", zap.String("field", u.Field), zap.String("filename", u.Filename), zap.Error(err))
		return fallback
	}
	return prefix + id
}

func (a *App) handleUploadImage(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}
	u := form.FirstFile("image")
	if u == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}
	id, err := a.saveUpload(u)
	if err != nil {
		a.Log.Error("save image", zap.String("filename", u.Filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save image: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"image_url": "/images/" + id,
		"image_id":  id,
	})
}

// handleImage serves a stored blob. With ?w=N a decodable image wider than
// N is scaled down to N pixels and re-encoded as JPEG.
func (a *App) handleImage(c echo.Context) error {
	f, err := a.Store.File(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Image not found")
		}
		return err
	}
	if w := c.QueryParam("w"); w != "" {
		width, err := strconv.Atoi(w)
		if err == nil && width >= minThumbWidth && width <= maxThumbWidth {
			if thumb, err := resizeImage(f.Data, width); err == nil {
				return c.Blob(http.StatusOK, "image/jpeg", thumb)
			}
		}
	}
	return c.Blob(http.StatusOK, f.ContentType, f.Data)
}

func (a *App) handleFile(c echo.Context) error {
	f, err := a.Store.File(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "File not found")
		}
		return err
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": f.Filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, f.ContentType, f.Data)
}

var errNoResize = errors.New("image already fits")

// resizeImage decodes data and scales it to width, keeping the aspect ratio.
// Images already at most width pixels wide return errNoResize.
func resizeImage(data []byte, width int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := src.Bounds()
	if b.Dx() <= width {
		return nil, errNoResize
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
