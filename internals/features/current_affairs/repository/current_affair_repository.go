package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"legisq_backend/internals/features/current_affairs/model"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
)

func InsertCurrentAffair(ctx context.Context, db *gorm.DB, m *model.CurrentAffairModel) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	return helper.ClassifyDBError(err)
}

// ListCurrentAffairs: terbaru dulu (published_date DESC, id DESC).
func ListCurrentAffairs(ctx context.Context, db *gorm.DB) ([]model.CurrentAffairModel, error) {
	rows := []model.CurrentAffairModel{}
	err := db.WithContext(ctx).
		Order("published_date DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return rows, nil
}

func FindCurrentAffairByID(ctx context.Context, db *gorm.DB, id uint) (*model.CurrentAffairModel, error) {
	var m model.CurrentAffairModel
	res := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, helper.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: current affair id=%d", helper.ErrNotFound, id)
	}
	return &m, nil
}

func DeleteCurrentAffair(ctx context.Context, db *gorm.DB, id uint) error {
	return records.DeleteByID(ctx, db, records.TableCurrentAffairs, id)
}
