package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"gorm.io/gorm"

	metaRepo "legisq_backend/internals/features/metadata/repository"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

// CodeSource menghasilkan kode record; codegen.Generator adalah implementasi default.
type CodeSource interface {
	BillCode(body, ministryCode string, stateCode *string) (string, error)
	QuestionCode(body, ministryCode string, stateCode *string) (string, error)
}

// checkReferences dijalankan sebelum file ditulis supaya validasi gagal tanpa efek samping.
func checkReferences(ctx context.Context, db *gorm.DB, ministryCode string, stateCode *string) error {
	ok, err := metaRepo.MinistryExists(ctx, db, ministryCode)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NewFieldError("ministry_code", fmt.Sprintf("unknown ministry %q", ministryCode))
	}
	if stateCode == nil {
		return nil
	}
	ok, err = metaRepo.StateExists(ctx, db, *stateCode)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NewFieldError("state_code", fmt.Sprintf("unknown state %q", *stateCode))
	}
	return nil
}

// insertWithDocument: tulis file dulu, lalu insert. Insert gagal → file dihapus.
// Nama file yang sudah terpakai dilaporkan sebagai ErrDuplicateKey (kode bentrok).
func insertWithDocument(ctx context.Context, files storage.Storage, upload *storage.Upload, name string, insert func(pdfPath *string) error) error {
	if upload == nil {
		return insert(nil)
	}
	if files == nil {
		return fmt.Errorf("%w: document storage not configured", helper.ErrFileIO)
	}

	relPath, err := files.Save(ctx, name, upload.Data)
	if err != nil {
		if errors.Is(err, storage.ErrExists) {
			return fmt.Errorf("%w: %w", helper.ErrDuplicateKey, err)
		}
		return fmt.Errorf("%w: %w", helper.ErrFileIO, err)
	}

	if err := insert(&relPath); err != nil {
		if rmErr := files.Remove(ctx, relPath); rmErr != nil {
			log.Printf("[WARN] failed to remove orphan document %s: %v", relPath, rmErr)
		}
		return err
	}
	return nil
}

func removeDocument(ctx context.Context, files storage.Storage, pdfPath *string) {
	if files == nil || pdfPath == nil || *pdfPath == "" {
		return
	}
	if err := files.Remove(ctx, *pdfPath); err != nil {
		log.Printf("[WARN] failed to remove document %s: %v", *pdfPath, err)
	}
}

// openDocument membuka PDF tersimpan; ErrNotFound bila record tidak punya dokumen.
func openDocument(ctx context.Context, files storage.Storage, pdfPath *string) (io.ReadCloser, string, error) {
	if pdfPath == nil || *pdfPath == "" {
		return nil, "", fmt.Errorf("%w: no document attached", helper.ErrNotFound)
	}
	if files == nil {
		return nil, "", fmt.Errorf("%w: document storage not configured", helper.ErrFileIO)
	}
	rc, err := files.Open(ctx, *pdfPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrBadPath) {
			return nil, "", fmt.Errorf("%w: %w", helper.ErrNotFound, err)
		}
		return nil, "", fmt.Errorf("%w: %w", helper.ErrFileIO, err)
	}
	return rc, path.Base(*pdfPath), nil
}
