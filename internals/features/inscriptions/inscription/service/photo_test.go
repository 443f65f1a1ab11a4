package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader emballe un contenu dans un vrai multipart.FileHeader, comme le
// ferait Fiber à la réception du formulaire.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mr := multipart.NewReader(&buf, mw.Boundary())
	form, err := mr.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["photo"]
	require.Len(t, files, 1)
	return files[0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessPhoto_PNG(t *testing.T) {
	fh := fileHeader(t, "portrait.png", pngBytes(t, 100, 80))

	dataURL, err := ProcessPhoto(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/webp;base64,"))
	assert.Greater(t, len(dataURL), len("data:image/webp;base64,"))
}

func TestProcessPhoto_FormatNonSupporte(t *testing.T) {
	fh := fileHeader(t, "document.pdf", []byte("%PDF-1.4"))

	_, err := ProcessPhoto(fh)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, fe.Code)
}

func TestProcessPhoto_ContenuCorrompu(t *testing.T) {
	fh := fileHeader(t, "portrait.png", []byte("pas une image"))

	_, err := ProcessPhoto(fh)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, fe.Code)
}

func TestProcessPhoto_TropLourde(t *testing.T) {
	fh := fileHeader(t, "portrait.png", pngBytes(t, 10, 10))
	fh.Size = photoMaxOctets + 1

	_, err := ProcessPhoto(fh)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, fe.Code)
}

func TestPaymentSucceeded(t *testing.T) {
	assert.True(t, PaymentSucceeded("capture"))
	assert.True(t, PaymentSucceeded("settlement"))
	assert.False(t, PaymentSucceeded("pending"))
	assert.False(t, PaymentSucceeded("deny"))
	assert.False(t, PaymentSucceeded(""))
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()
	assert.True(t, strings.HasPrefix(id, "UECC-BADGE-"))
	assert.NotEqual(t, id, NewOrderID())
}
