package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypePDF     = 4
	FileTypeUnknown = 99

	MimePDF = "application/pdf"
)

func DetectFileTypeFromExt(filename string) int {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF
	default:
		return FileTypeUnknown
	}
}

func IsPDFFilename(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileTypePDF
}
