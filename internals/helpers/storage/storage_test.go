package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorage(t.TempDir(), "pdfs")

	rel, err := s.Save(ctx, "BL-FN-1234_bill.pdf", samplePDF)
	require.NoError(t, err)
	assert.Equal(t, "pdfs/BL-FN-1234_bill.pdf", rel)

	rc, err := s.Open(ctx, rel)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, samplePDF, got)

	require.NoError(t, s.Remove(ctx, rel))
	require.NoError(t, s.Remove(ctx, rel), "remove is idempotent")

	_, err = s.Open(ctx, rel)
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStorageRefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewLocalStorage(root, "pdfs")

	_, err := s.Save(ctx, "QN-FN-1000_qn.pdf", samplePDF)
	require.NoError(t, err)

	_, err = s.Save(ctx, "QN-FN-1000_qn.pdf", []byte("%PDF-other"))
	assert.ErrorIs(t, err, ErrExists)

	got, err := os.ReadFile(filepath.Join(root, "pdfs", "QN-FN-1000_qn.pdf"))
	require.NoError(t, err)
	assert.Equal(t, samplePDF, got)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorage(t.TempDir(), "pdfs")

	for _, p := range []string{"../secret.pdf", "pdfs/../../etc/passwd", "/etc/passwd", "other/x.pdf", "pdfs/"} {
		_, err := s.Open(ctx, p)
		assert.ErrorIs(t, err, ErrBadPath, p)
	}
	_, err := s.Save(ctx, "../x.pdf", samplePDF)
	assert.ErrorIs(t, err, ErrBadPath)
}

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  bool
	}{
		{"valid", "bill.pdf", samplePDF, false},
		{"uppercase ext", "BILL.PDF", samplePDF, false},
		{"wrong ext", "bill.docx", samplePDF, true},
		{"not pdf content", "bill.pdf", []byte("just some text pretending"), true},
		{"empty", "bill.pdf", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDF(tt.filename, tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotPDF)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
