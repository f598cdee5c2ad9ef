package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"legisq_backend/internals/features/legislation/codegen"
	"legisq_backend/internals/features/legislation/dto"
	"legisq_backend/internals/features/legislation/model"
	"legisq_backend/internals/features/legislation/repository"
	"legisq_backend/internals/features/legislation/search"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
	"legisq_backend/internals/middlewares/metrics"
)

type QuestionService struct {
	DB    *gorm.DB
	Files storage.Storage
	Codes CodeSource
	Now   func() time.Time
}

func NewQuestionService(db *gorm.DB, files storage.Storage) *QuestionService {
	return &QuestionService{DB: db, Files: files, Codes: codegen.NewGenerator(), Now: time.Now}
}

func (s *QuestionService) Create(ctx context.Context, req *dto.CreateQuestionRequest, upload *storage.Upload) (*model.QuestionRow, error) {
	req.Normalize()
	m, err := req.ToModel(s.Now())
	if err != nil {
		return nil, err
	}
	if err := checkReferences(ctx, s.DB, m.QuestionMinistryCode, m.QuestionStateCode); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		code, err := s.Codes.QuestionCode(m.QuestionLegislativeBody, m.QuestionMinistryCode, m.QuestionStateCode)
		if err != nil {
			return nil, err
		}
		m.QuestionID = 0
		m.QuestionCode = code
		m.QuestionPDFPath = nil

		err = insertWithDocument(ctx, s.Files, upload, code+"_qn.pdf", func(pdfPath *string) error {
			m.QuestionPDFPath = pdfPath
			return repository.InsertQuestion(ctx, s.DB, m)
		})
		if err == nil {
			break
		}
		if errors.Is(err, helper.ErrDuplicateKey) && attempt < codegen.MaxAttempts {
			metrics.CodeCollisions.WithLabelValues("question").Inc()
			log.Printf("[WARN] question code %s already taken (attempt %d/%d), regenerating", code, attempt, codegen.MaxAttempts)
			continue
		}
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("question").Inc()
	log.Printf("[INFO] question created code=%s body=%s", m.QuestionCode, m.QuestionLegislativeBody)
	return repository.FindQuestionByID(ctx, s.DB, m.QuestionID)
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*model.QuestionRow, error) {
	return repository.FindQuestionByID(ctx, s.DB, id)
}

func (s *QuestionService) List(ctx context.Context, q dto.ListQuery) ([]model.QuestionRow, error) {
	body, err := dto.ParseBody(q.Body)
	if err != nil {
		return nil, err
	}
	rows, err := repository.ListQuestions(ctx, s.DB, repository.Filter{
		Body:      body,
		Search:    q.Q,
		StateCode: normalizeFilterCode(q.StateCode),
	})
	if err != nil {
		return nil, err
	}
	return search.SortQuestions(rows, search.ParseSort(q.Sort)), nil
}

func (s *QuestionService) Suggest(ctx context.Context, q dto.SuggestQuery) ([]string, error) {
	if !search.ShouldSuggest(q.Q) {
		return []string{}, nil
	}
	body, err := dto.ParseBody(q.Body)
	if err != nil {
		return nil, err
	}
	rows, err := repository.SuggestQuestions(ctx, s.DB, body, q.Q)
	if err != nil {
		return nil, err
	}
	return search.Suggestions(rows), nil
}

func (s *QuestionService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateQuestionStatusRequest) (*model.QuestionRow, error) {
	status, err := req.Resolve()
	if err != nil {
		return nil, err
	}
	if err := repository.UpdateStatus(ctx, s.DB, records.TableQuestions, id, status, nil); err != nil {
		return nil, err
	}
	log.Printf("[INFO] question status updated id=%d status=%s", id, status)
	return repository.FindQuestionByID(ctx, s.DB, id)
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	row, err := repository.FindQuestionByID(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if err := repository.DeleteQuestion(ctx, s.DB, id); err != nil {
		return err
	}
	removeDocument(ctx, s.Files, row.QuestionPDFPath)
	log.Printf("[INFO] question deleted id=%d code=%s", id, row.QuestionCode)
	return nil
}

func (s *QuestionService) OpenDocument(ctx context.Context, id uint) (io.ReadCloser, string, error) {
	row, err := repository.FindQuestionByID(ctx, s.DB, id)
	if err != nil {
		return nil, "", err
	}
	return openDocument(ctx, s.Files, row.QuestionPDFPath)
}

func normalizeFilterCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
