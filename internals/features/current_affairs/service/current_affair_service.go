package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"path"
	"time"

	"gorm.io/gorm"

	"legisq_backend/internals/features/current_affairs/dto"
	"legisq_backend/internals/features/current_affairs/model"
	"legisq_backend/internals/features/current_affairs/repository"
	"legisq_backend/internals/features/legislation/search"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
	"legisq_backend/internals/middlewares/metrics"
)

// Nama file CA_{judul}_{100-999}.pdf; bentrok nama dicoba ulang.
const maxNameAttempts = 5

type CurrentAffairService struct {
	DB     *gorm.DB
	Files  storage.Storage
	Now    func() time.Time
	Suffix func() int
}

func NewCurrentAffairService(db *gorm.DB, files storage.Storage) *CurrentAffairService {
	return &CurrentAffairService{
		DB:     db,
		Files:  files,
		Now:    time.Now,
		Suffix: func() int { return 100 + rand.IntN(900) },
	}
}

func (s *CurrentAffairService) DocumentName(title string) string {
	return fmt.Sprintf("CA_%s_%d.pdf", helper.SanitizeFileTitle(title, 60), s.Suffix())
}

func (s *CurrentAffairService) Create(ctx context.Context, req *dto.CreateCurrentAffairRequest, upload *storage.Upload) (*model.CurrentAffairModel, error) {
	req.Normalize()
	m, err := req.ToModel(s.Now())
	if err != nil {
		return nil, err
	}

	if upload != nil {
		if s.Files == nil {
			return nil, fmt.Errorf("%w: document storage not configured", helper.ErrFileIO)
		}
		var relPath string
		for attempt := 1; ; attempt++ {
			relPath, err = s.Files.Save(ctx, s.DocumentName(m.CurrentAffairTitle), upload.Data)
			if err == nil {
				break
			}
			if errors.Is(err, storage.ErrExists) && attempt < maxNameAttempts {
				continue
			}
			return nil, fmt.Errorf("%w: %w", helper.ErrFileIO, err)
		}
		m.CurrentAffairPDFPath = &relPath
	}

	if err := repository.InsertCurrentAffair(ctx, s.DB, m); err != nil {
		if m.CurrentAffairPDFPath != nil {
			if rmErr := s.Files.Remove(ctx, *m.CurrentAffairPDFPath); rmErr != nil {
				log.Printf("[WARN] failed to remove orphan document %s: %v", *m.CurrentAffairPDFPath, rmErr)
			}
		}
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("current_affair").Inc()
	log.Printf("[INFO] current affair created id=%d", m.CurrentAffairID)
	return m, nil
}

// List: semua item terbaru dulu, disaring Matches(title, description).
func (s *CurrentAffairService) List(ctx context.Context, q dto.ListQuery) ([]model.CurrentAffairModel, error) {
	rows, err := repository.ListCurrentAffairs(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if search.IsBlank(q.Q) {
		return rows, nil
	}
	out := rows[:0:0]
	for _, r := range rows {
		if search.Matches(q.Q, r.CurrentAffairTitle, r.CurrentAffairDescription) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *CurrentAffairService) Delete(ctx context.Context, id uint) error {
	row, err := repository.FindCurrentAffairByID(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if err := repository.DeleteCurrentAffair(ctx, s.DB, id); err != nil {
		return err
	}
	if row.CurrentAffairPDFPath != nil && s.Files != nil {
		if err := s.Files.Remove(ctx, *row.CurrentAffairPDFPath); err != nil {
			log.Printf("[WARN] failed to remove document %s: %v", *row.CurrentAffairPDFPath, err)
		}
	}
	log.Printf("[INFO] current affair deleted id=%d", id)
	return nil
}

func (s *CurrentAffairService) OpenDocument(ctx context.Context, id uint) (io.ReadCloser, string, error) {
	row, err := repository.FindCurrentAffairByID(ctx, s.DB, id)
	if err != nil {
		return nil, "", err
	}
	if row.CurrentAffairPDFPath == nil || *row.CurrentAffairPDFPath == "" {
		return nil, "", fmt.Errorf("%w: no document attached", helper.ErrNotFound)
	}
	if s.Files == nil {
		return nil, "", fmt.Errorf("%w: document storage not configured", helper.ErrFileIO)
	}
	rc, err := s.Files.Open(ctx, *row.CurrentAffairPDFPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrBadPath) {
			return nil, "", fmt.Errorf("%w: %w", helper.ErrNotFound, err)
		}
		return nil, "", fmt.Errorf("%w: %w", helper.ErrFileIO, err)
	}
	return rc, path.Base(*row.CurrentAffairPDFPath), nil
}
