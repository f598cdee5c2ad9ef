package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/legislation/model"
	"legisq_backend/internals/features/legislation/search"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
)

const billSelect = "b.*, m.name AS ministry_name, s.name AS state_name"

func billsJoined(db *gorm.DB) *gorm.DB {
	return db.Table("bills AS b").
		Select(billSelect).
		Joins("JOIN ministries m ON m.code = b.ministry_code").
		Joins("LEFT JOIN states s ON s.code = b.state_code")
}

// InsertBill menyimpan bill dalam satu transaksi; referensi ministry/state dicek di dalamnya.
func InsertBill(ctx context.Context, db *gorm.DB, m *model.BillModel) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureReferences(tx, m.BillMinistryCode, m.BillStateCode); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return helper.ClassifyDBError(err)
}

// ListBills: filter body (exact), search (kode/nama/ministry), state opsional.
// Urut introduced_date DESC, id DESC.
func ListBills(ctx context.Context, db *gorm.DB, f Filter) ([]model.BillRow, error) {
	q := billsJoined(db.WithContext(ctx)).Where("b.legislative_body = ?", f.Body)
	if f.StateCode != "" {
		q = q.Where("b.state_code = ?", f.StateCode)
	}
	searchInSQL := !search.IsBlank(f.Search) && foldsUnicode(db)
	if searchInSQL {
		like := search.LikePattern(f.Search)
		q = q.Where(`(LOWER(b.bill_code) LIKE ? ESCAPE '\' OR LOWER(b.bill_name) LIKE ? ESCAPE '\' OR LOWER(m.name) LIKE ? ESCAPE '\')`,
			like, like, like)
	}

	rows := []model.BillRow{}
	if err := q.Order("b.introduced_date DESC").Order("b.id DESC").Scan(&rows).Error; err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	if !searchInSQL && !search.IsBlank(f.Search) {
		rows = keepMatching(rows, 0, func(r model.BillRow) bool {
			return search.Matches(f.Search, r.BillCode, r.BillName, r.MinistryName)
		})
	}
	return rows, nil
}

func FindBillByID(ctx context.Context, db *gorm.DB, id uint) (*model.BillRow, error) {
	var row model.BillRow
	res := billsJoined(db.WithContext(ctx)).Where("b.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, helper.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: bill id=%d", helper.ErrNotFound, id)
	}
	return &row, nil
}

// SuggestBills: maksimal search.MaxSuggestionRows row kandidat.
func SuggestBills(ctx context.Context, db *gorm.DB, body, query string) ([]search.SuggestionRow, error) {
	q := db.WithContext(ctx).Table("bills AS b").
		Select("b.bill_code AS code, b.bill_name AS name, m.name AS ministry_name").
		Joins("JOIN ministries m ON m.code = b.ministry_code").
		Where("b.legislative_body = ?", body).
		Order("b.introduced_date DESC").Order("b.id DESC")
	return suggestRows(q, db, query,
		`(LOWER(b.bill_code) LIKE ? ESCAPE '\' OR LOWER(b.bill_name) LIKE ? ESCAPE '\' OR LOWER(m.name) LIKE ? ESCAPE '\')`)
}

// UpdateBillStatus hanya mengubah current_status (+ approval_result bila diisi).
func UpdateBillStatus(ctx context.Context, db *gorm.DB, id uint, status string, approvalResult *string) error {
	canonical, ok := constants.ParseBillStatus(status)
	if !ok {
		return helper.NewFieldError("current_status", fmt.Sprintf("unknown bill status %q", status))
	}
	updates := map[string]any{"current_status": canonical}
	if approvalResult != nil {
		approval, ok := constants.ParseApprovalResult(*approvalResult)
		if !ok {
			return helper.NewFieldError("approval_result", fmt.Sprintf("unknown approval result %q", *approvalResult))
		}
		updates["approval_result"] = approval
	}
	return updateStatusColumns(ctx, db, records.TableBills, id, updates)
}

func DeleteBill(ctx context.Context, db *gorm.DB, id uint) error {
	return records.DeleteByID(ctx, db, records.TableBills, id)
}
