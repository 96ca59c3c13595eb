package utils

import (
	"errors"
	"strings"
)

// Giới hạn kích thước file tài liệu học
const MaxMaterialFileSize = 100 * 1024 * 1024 // 100MB

// Các định dạng tài liệu học được phép upload
var allowedMaterialExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
	".txt": true, ".md": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".mp4": true, ".avi": true, ".mkv": true,
	".mp3": true, ".wav": true,
}

// ValidateMaterialExt kiểm tra phần mở rộng file có trong allow-list không
func ValidateMaterialExt(ext string) error {
	if !allowedMaterialExts[strings.ToLower(ext)] {
		return errors.New("định dạng file không hỗ trợ: " + ext)
	}
	return nil
}
