package recipe

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

// maxImageSize — предел размера декодированной картинки в байтах.
const maxImageSize = 12000000

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// saveImage декодирует картинку из data-URI (или голого base64),
// проверяет размер и кладёт файл в mediaDir/recipes.
// Возвращает относительный путь для поля image рецепта.
func saveImage(mediaDir, encoded string) (string, error) {
	ext := ".jpg"
	if strings.HasPrefix(encoded, "data:") {
		header, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return "", validationErr("image", "malformed data URI")
		}
		mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		if e, known := imageExtensions[mime]; known {
			ext = e
		}
		encoded = rest
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", validationErr("image", "invalid base64 payload")
	}
	if len(raw) > maxImageSize {
		return "", validationErr("image", "image exceeds maximum size")
	}

	dir := filepath.Join(mediaDir, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	name := hex.EncodeToString(buf) + ext

	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("recipes", name)), nil
}

// removeImage подчищает файл, когда запись рецепта в БД не удалась:
// картинка сохраняется до транзакции и без отката осталась бы сиротой.
func removeImage(mediaDir, imagePath string) {
	if imagePath == "" {
		return
	}
	_ = os.Remove(filepath.Join(mediaDir, filepath.FromSlash(imagePath)))
}
