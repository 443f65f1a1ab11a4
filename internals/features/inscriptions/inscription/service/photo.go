package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

// Dimensions du portrait badge.
const (
	photoLargeur   = 480
	photoHauteur   = 640
	photoMaxOctets = 5 * 1024 * 1024
)

// ProcessPhoto décode l'upload (jpg/png/webp), recadre au format portrait du
// badge et renvoie la charge utile embarquée (data URL webp). La photo est
// stockée dans le dossier lui-même, pas comme référence de fichier.
func ProcessPhoto(file *multipart.FileHeader) (string, error) {
	if file.Size > photoMaxOctets {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Taille de photo maximale: 5MB")
	}

	src, err := file.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Impossible d'ouvrir le fichier envoyé")
	}
	defer src.Close()

	var img image.Image
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Fichier JPEG invalide")
		}
	case ".png":
		img, err = png.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Fichier PNG invalide")
		}
	case ".webp":
		img, err = webp.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Fichier WebP invalide")
		}
	default:
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Format non supporté (jpg, jpeg, png, webp)")
	}

	// Recadrage centré au format badge
	portrait := imaging.Fill(img, photoLargeur, photoHauteur, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, portrait, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Échec de la conversion WebP")
	}

	return fmt.Sprintf("data:image/webp;base64,%s",
		base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
