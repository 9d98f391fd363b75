package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureUploadDir creates the local uploads directory if it doesn't exist
func EnsureUploadDir() error {
	return os.MkdirAll("uploads", os.ModePerm)
}

// SaveFile saves the uploaded file to the given destination path
func SaveFile(fileHeader *multipart.FileHeader, destPath string) error {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}

// StoreImage persists a submission photo and returns its durable URL: R2 when
// configured, the locally served /uploads directory otherwise.
func StoreImage(fileHeader *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	if R2Enabled() {
		return UploadFileToR2(fileHeader, "submissions/"+name)
	}

	destPath := filepath.Join("uploads", name)
	if err := SaveFile(fileHeader, destPath); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return "/uploads/" + name, nil
}
