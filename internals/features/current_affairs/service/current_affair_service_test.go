package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "legisq_backend/internals/databases"
	"legisq_backend/internals/features/current_affairs/dto"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func newService(t *testing.T) (*CurrentAffairService, string) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	root := t.TempDir()
	svc := NewCurrentAffairService(db, storage.NewLocalStorage(root, "pdfs"))
	svc.Now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }
	return svc, root
}

func strPtr(s string) *string { return &s }

func TestCreateRequiresTitleAndDescription(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "  ", Description: "x"}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "Budget", Description: ""}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "Budget", Description: "d", PublishedDate: "01/07/2024"}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestCreateDefaultsAndOrdering(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateCurrentAffairRequest{
		Title: "Monsoon Session Begins", Description: "Parliament reconvenes", URL: strPtr(" https://example.org/a "),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", first.CurrentAffairPublishedDate)
	require.NotNil(t, first.CurrentAffairURL)
	assert.Equal(t, "https://example.org/a", *first.CurrentAffairURL)
	assert.Nil(t, first.CurrentAffairPDFPath)

	_, err = svc.Create(ctx, &dto.CreateCurrentAffairRequest{
		Title: "Older note", Description: "Archive", PublishedDate: "2023-01-15",
	}, nil)
	require.NoError(t, err)

	rows, err := svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Monsoon Session Begins", rows[0].CurrentAffairTitle)

	rows, err = svc.List(ctx, dto.ListQuery{Q: "archive"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Older note", rows[0].CurrentAffairTitle)
}

func TestCreateWithDocumentRetriesNameCollision(t *testing.T) {
	svc, root := newService(t)
	ctx := context.Background()

	suffixes := []int{123, 123, 456}
	svc.Suffix = func() int {
		n := suffixes[0]
		if len(suffixes) > 1 {
			suffixes = suffixes[1:]
		}
		return n
	}

	a, err := svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "Budget Speech", Description: "d"},
		&storage.Upload{Filename: "a.pdf", Data: samplePDF})
	require.NoError(t, err)
	require.NotNil(t, a.CurrentAffairPDFPath)
	assert.Equal(t, "pdfs/CA_Budget_Speech_123.pdf", *a.CurrentAffairPDFPath)

	b, err := svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "Budget Speech", Description: "d"},
		&storage.Upload{Filename: "b.pdf", Data: samplePDF})
	require.NoError(t, err)
	assert.Equal(t, "pdfs/CA_Budget_Speech_456.pdf", *b.CurrentAffairPDFPath)

	rc, name, err := svc.OpenDocument(ctx, b.CurrentAffairID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, samplePDF, data)
	assert.Equal(t, "CA_Budget_Speech_456.pdf", name)

	require.NoError(t, svc.Delete(ctx, a.CurrentAffairID))
	_, err = os.Stat(filepath.Join(root, "pdfs", "CA_Budget_Speech_123.pdf"))
	assert.True(t, os.IsNotExist(err))

	err = svc.Delete(ctx, a.CurrentAffairID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestOpenDocumentWithoutPDF(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &dto.CreateCurrentAffairRequest{Title: "No file", Description: "d"}, nil)
	require.NoError(t, err)

	_, _, err = svc.OpenDocument(ctx, m.CurrentAffairID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
