package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"legisq_backend/internals/features/legislation/search"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
)

// Filter untuk list bill/question. StateCode & Search opsional.
type Filter struct {
	Body      string
	Search    string
	StateCode string
}

// UpdateStatus: bentuk generik (table, id, status, approval?) untuk bills/questions.
func UpdateStatus(ctx context.Context, db *gorm.DB, table records.Table, id uint, status string, approvalResult *string) error {
	switch table {
	case records.TableBills:
		return UpdateBillStatus(ctx, db, id, status, approvalResult)
	case records.TableQuestions:
		if approvalResult != nil {
			return helper.NewFieldError("approval_result", "questions have no approval result")
		}
		return UpdateQuestionStatus(ctx, db, id, status)
	default:
		return helper.NewFieldError("table", fmt.Sprintf("%s has no status", table))
	}
}

func updateStatusColumns(ctx context.Context, db *gorm.DB, table records.Table, id uint, updates map[string]any) error {
	res := db.WithContext(ctx).Table(string(table)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s id=%d", helper.ErrNotFound, table, id)
	}
	return nil
}

// ensureReferences: ministry wajib ada; state (jika ada) wajib ada.
func ensureReferences(tx *gorm.DB, ministryCode string, stateCode *string) error {
	var n int64
	if err := tx.Table(string(records.TableMinistries)).Where("code = ?", ministryCode).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NewFieldError("ministry_code", fmt.Sprintf("unknown ministry %q", ministryCode))
	}
	if stateCode == nil {
		return nil
	}
	if err := tx.Table(string(records.TableStates)).Where("code = ?", *stateCode).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NewFieldError("state_code", fmt.Sprintf("unknown state %q", *stateCode))
	}
	return nil
}

// foldsUnicode: LOWER di Postgres sadar Unicode, LOWER bawaan SQLite hanya ASCII.
// Untuk SQLite predikat pencarian dijalankan di Go (search.Matches).
func foldsUnicode(db *gorm.DB) bool {
	return db.Dialector.Name() != "sqlite"
}

// keepMatching menyaring rows tanpa mengubah urutan; limit 0 = tanpa batas.
func keepMatching[T any](rows []T, limit int, keep func(T) bool) []T {
	out := rows[:0:0]
	for _, r := range rows {
		if !keep(r) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// suggestRows: q sudah berisi select/join/filter body/order; predikat LIKE
// dipasang di SQL atau diganti search.Matches untuk SQLite.
func suggestRows(q, db *gorm.DB, query, likeClause string) ([]search.SuggestionRow, error) {
	rows := []search.SuggestionRow{}
	if foldsUnicode(db) {
		like := search.LikePattern(query)
		err := q.Where(likeClause, like, like, like).Limit(search.MaxSuggestionRows).Scan(&rows).Error
		if err != nil {
			return nil, helper.ClassifyDBError(err)
		}
		return rows, nil
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return keepMatching(rows, search.MaxSuggestionRows, func(r search.SuggestionRow) bool {
		return search.Matches(query, r.Code, r.Name, r.MinistryName)
	}), nil
}
