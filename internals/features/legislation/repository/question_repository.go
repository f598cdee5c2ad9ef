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

const questionSelect = "q.*, m.name AS ministry_name, s.name AS state_name"

func questionsJoined(db *gorm.DB) *gorm.DB {
	return db.Table("questions AS q").
		Select(questionSelect).
		Joins("JOIN ministries m ON m.code = q.ministry_code").
		Joins("LEFT JOIN states s ON s.code = q.state_code")
}

func InsertQuestion(ctx context.Context, db *gorm.DB, m *model.QuestionModel) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureReferences(tx, m.QuestionMinistryCode, m.QuestionStateCode); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return helper.ClassifyDBError(err)
}

func ListQuestions(ctx context.Context, db *gorm.DB, f Filter) ([]model.QuestionRow, error) {
	q := questionsJoined(db.WithContext(ctx)).Where("q.legislative_body = ?", f.Body)
	if f.StateCode != "" {
		q = q.Where("q.state_code = ?", f.StateCode)
	}
	searchInSQL := !search.IsBlank(f.Search) && foldsUnicode(db)
	if searchInSQL {
		like := search.LikePattern(f.Search)
		q = q.Where(`(LOWER(q.question_code) LIKE ? ESCAPE '\' OR LOWER(q.question_title) LIKE ? ESCAPE '\' OR LOWER(m.name) LIKE ? ESCAPE '\')`,
			like, like, like)
	}

	rows := []model.QuestionRow{}
	if err := q.Order("q.introduced_date DESC").Order("q.id DESC").Scan(&rows).Error; err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	if !searchInSQL && !search.IsBlank(f.Search) {
		rows = keepMatching(rows, 0, func(r model.QuestionRow) bool {
			return search.Matches(f.Search, r.QuestionCode, r.QuestionTitle, r.MinistryName)
		})
	}
	return rows, nil
}

func FindQuestionByID(ctx context.Context, db *gorm.DB, id uint) (*model.QuestionRow, error) {
	var row model.QuestionRow
	res := questionsJoined(db.WithContext(ctx)).Where("q.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, helper.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: question id=%d", helper.ErrNotFound, id)
	}
	return &row, nil
}

func SuggestQuestions(ctx context.Context, db *gorm.DB, body, query string) ([]search.SuggestionRow, error) {
	q := db.WithContext(ctx).Table("questions AS q").
		Select("q.question_code AS code, q.question_title AS name, m.name AS ministry_name").
		Joins("JOIN ministries m ON m.code = q.ministry_code").
		Where("q.legislative_body = ?", body).
		Order("q.introduced_date DESC").Order("q.id DESC")
	return suggestRows(q, db, query,
		`(LOWER(q.question_code) LIKE ? ESCAPE '\' OR LOWER(q.question_title) LIKE ? ESCAPE '\' OR LOWER(m.name) LIKE ? ESCAPE '\')`)
}

func UpdateQuestionStatus(ctx context.Context, db *gorm.DB, id uint, status string) error {
	canonical, ok := constants.ParseQuestionStatus(status)
	if !ok {
		return helper.NewFieldError("current_status", fmt.Sprintf("unknown question status %q", status))
	}
	return updateStatusColumns(ctx, db, records.TableQuestions, id, map[string]any{"current_status": canonical})
}

func DeleteQuestion(ctx context.Context, db *gorm.DB, id uint) error {
	return records.DeleteByID(ctx, db, records.TableQuestions, id)
}
