package service

import (
	"context"
	"errors"
	"io"
	"log"
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

type BillService struct {
	DB    *gorm.DB
	Files storage.Storage
	Codes CodeSource
	Now   func() time.Time
}

func NewBillService(db *gorm.DB, files storage.Storage) *BillService {
	return &BillService{DB: db, Files: files, Codes: codegen.NewGenerator(), Now: time.Now}
}

// Create: validasi → kode → file → insert. Kode bentrok diulang sampai codegen.MaxAttempts.
func (s *BillService) Create(ctx context.Context, req *dto.CreateBillRequest, upload *storage.Upload) (*model.BillRow, error) {
	req.Normalize()
	m, err := req.ToModel(s.Now())
	if err != nil {
		return nil, err
	}
	if err := checkReferences(ctx, s.DB, m.BillMinistryCode, m.BillStateCode); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		code, err := s.Codes.BillCode(m.BillLegislativeBody, m.BillMinistryCode, m.BillStateCode)
		if err != nil {
			return nil, err
		}
		m.BillID = 0
		m.BillCode = code
		m.BillPDFPath = nil

		err = insertWithDocument(ctx, s.Files, upload, code+"_bill.pdf", func(pdfPath *string) error {
			m.BillPDFPath = pdfPath
			return repository.InsertBill(ctx, s.DB, m)
		})
		if err == nil {
			break
		}
		if errors.Is(err, helper.ErrDuplicateKey) && attempt < codegen.MaxAttempts {
			metrics.CodeCollisions.WithLabelValues("bill").Inc()
			log.Printf("[WARN] bill code %s already taken (attempt %d/%d), regenerating", code, attempt, codegen.MaxAttempts)
			continue
		}
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("bill").Inc()
	log.Printf("[INFO] bill created code=%s body=%s", m.BillCode, m.BillLegislativeBody)
	return repository.FindBillByID(ctx, s.DB, m.BillID)
}

func (s *BillService) Get(ctx context.Context, id uint) (*model.BillRow, error) {
	return repository.FindBillByID(ctx, s.DB, id)
}

// List: filter di SQL, lalu sort stabil di memori.
func (s *BillService) List(ctx context.Context, q dto.ListQuery) ([]model.BillRow, error) {
	body, err := dto.ParseBody(q.Body)
	if err != nil {
		return nil, err
	}
	rows, err := repository.ListBills(ctx, s.DB, repository.Filter{
		Body:      body,
		Search:    q.Q,
		StateCode: normalizeFilterCode(q.StateCode),
	})
	if err != nil {
		return nil, err
	}
	return search.SortBills(rows, search.ParseSort(q.Sort)), nil
}

func (s *BillService) Suggest(ctx context.Context, q dto.SuggestQuery) ([]string, error) {
	if !search.ShouldSuggest(q.Q) {
		return []string{}, nil
	}
	body, err := dto.ParseBody(q.Body)
	if err != nil {
		return nil, err
	}
	rows, err := repository.SuggestBills(ctx, s.DB, body, q.Q)
	if err != nil {
		return nil, err
	}
	return search.Suggestions(rows), nil
}

func (s *BillService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateBillStatusRequest) (*model.BillRow, error) {
	status, approval, err := req.Resolve()
	if err != nil {
		return nil, err
	}
	if err := repository.UpdateStatus(ctx, s.DB, records.TableBills, id, status, approval); err != nil {
		return nil, err
	}
	log.Printf("[INFO] bill status updated id=%d status=%s", id, status)
	return repository.FindBillByID(ctx, s.DB, id)
}

// Delete menghapus row lalu dokumennya (kegagalan hapus file hanya di-log).
func (s *BillService) Delete(ctx context.Context, id uint) error {
	row, err := repository.FindBillByID(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if err := repository.DeleteBill(ctx, s.DB, id); err != nil {
		return err
	}
	removeDocument(ctx, s.Files, row.BillPDFPath)
	log.Printf("[INFO] bill deleted id=%d code=%s", id, row.BillCode)
	return nil
}

func (s *BillService) OpenDocument(ctx context.Context, id uint) (io.ReadCloser, string, error) {
	row, err := repository.FindBillByID(ctx, s.DB, id)
	if err != nil {
		return nil, "", err
	}
	return openDocument(ctx, s.Files, row.BillPDFPath)
}
