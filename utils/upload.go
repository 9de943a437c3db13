package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadDir is where uploaded images land; the router serves it at /uploads.
const UploadDir = "public/uploads"

// SaveUploadedImage writes the file under UploadDir with a timestamp prefix
// so repeated uploads of the same filename never clash, and returns the
// public path the record should reference.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadDir, 0755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(UploadDir, filename)); err != nil {
		return "", fmt.Errorf("saving image: %w", err)
	}

	return "/uploads/" + filename, nil
}
