package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"legisq_backend/internals/constants"
)

var (
	ErrNotExist = errors.New("stored file does not exist")
	ErrExists   = errors.New("stored file already exists")
	ErrNotPDF   = errors.New("file is not a PDF document")
	ErrTooLarge = errors.New("file exceeds upload limit")
	ErrBadPath  = errors.New("invalid stored file path")
)

// Storage menyimpan dokumen di direktori datar; path relatif disimpan di row.
type Storage interface {
	// Save menulis file baru; ErrExists bila nama sudah dipakai.
	Save(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)
	// Remove idempotent: file yang sudah tidak ada bukan error.
	Remove(ctx context.Context, relPath string) error
}

// Upload: dokumen yang sudah dibaca penuh dari request.
type Upload struct {
	Filename string
	Data     []byte
}

// ValidatePDF mengecek ekstensi + isi (magic bytes) dokumen.
func ValidatePDF(filename string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", ErrNotPDF)
	}
	if filename != "" && !constants.IsPDFFilename(filename) {
		return fmt.Errorf("%w: %s", ErrNotPDF, filename)
	}
	if mt := mimetype.Detect(data); !mt.Is(constants.MimePDF) {
		return fmt.Errorf("%w: detected %s", ErrNotPDF, mt.String())
	}
	return nil
}

// ReadUpload membaca multipart file dengan batas ukuran, lalu validasi PDF.
func ReadUpload(fh *multipart.FileHeader, maxBytes int64) (*Upload, error) {
	if fh == nil {
		return nil, nil
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := io.Reader(f)
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	if err := ValidatePDF(fh.Filename, data); err != nil {
		return nil, err
	}
	return &Upload{Filename: fh.Filename, Data: data}, nil
}

// cleanName menolak nama yang mengandung separator path.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadPath, name)
	}
	return name, nil
}
