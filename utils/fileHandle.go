package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile writes an uploaded file into destDir under a generated
// name and returns the stored filename.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.New().String() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored filename to its public URL.
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
