package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidUpload = errors.New("unsupported image type")

// 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ValidateImageName 校验上传文件名，扩展名大小写不敏感。
// 返回规范化（小写）的扩展名
func ValidateImageName(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !allowedImageExts[ext] {
		return "", ErrInvalidUpload
	}
	return ext, nil
}

// SaveUpload 将上传的图片写入本地上传目录，返回存储文件名。
// 存储名用 uuid 生成，避免用户文件名冲突和路径注入
func SaveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext, err := ValidateImageName(header.Filename)
	if err != nil {
		return "", err
	}

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return name, nil
}

// UploadDir 图片存储目录，可通过 UPLOAD_DIR 覆盖
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "web/static/uploads"
}
