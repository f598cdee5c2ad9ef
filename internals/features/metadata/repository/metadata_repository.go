package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"legisq_backend/internals/features/metadata/model"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
)

var reCode = regexp.MustCompile(`^[A-Z]{2}$`)

// NormalizeCode: trim + uppercase. Tidak memvalidasi.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateCodeName(code, name string) (string, string, error) {
	code = NormalizeCode(code)
	name = strings.TrimSpace(name)
	if !reCode.MatchString(code) {
		return "", "", helper.NewFieldError("code", "must be exactly two letters")
	}
	if name == "" {
		return "", "", helper.NewFieldError("name", "is required")
	}
	return code, name, nil
}

// ===================== MINISTRIES =====================

func InsertMinistry(ctx context.Context, db *gorm.DB, code, name string) (*model.MinistryModel, error) {
	code, name, err := validateCodeName(code, name)
	if err != nil {
		return nil, err
	}
	m := &model.MinistryModel{MinistryCode: code, MinistryName: name}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return m, nil
}

func ListMinistries(ctx context.Context, db *gorm.DB) ([]model.MinistryModel, error) {
	var out []model.MinistryModel
	if err := db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return out, nil
}

func MinistryExists(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	return codeExists(ctx, db, records.TableMinistries, code)
}

// DeleteMinistry ditolak (ErrInUse) selama masih dirujuk bill/question.
func DeleteMinistry(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRestricted(ctx, db, records.TableMinistries, id, "ministry_code")
}

// ===================== STATES =====================

func InsertState(ctx context.Context, db *gorm.DB, code, name string) (*model.StateModel, error) {
	code, name, err := validateCodeName(code, name)
	if err != nil {
		return nil, err
	}
	s := &model.StateModel{StateCode: code, StateName: name}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
	if err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return s, nil
}

func ListStates(ctx context.Context, db *gorm.DB) ([]model.StateModel, error) {
	var out []model.StateModel
	if err := db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, helper.ClassifyDBError(err)
	}
	return out, nil
}

func StateExists(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	return codeExists(ctx, db, records.TableStates, code)
}

func DeleteState(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRestricted(ctx, db, records.TableStates, id, "state_code")
}

// ===================== SHARED =====================

func codeExists(ctx context.Context, db *gorm.DB, table records.Table, code string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Table(string(table)).Where("code = ?", NormalizeCode(code)).Count(&n).Error
	if err != nil {
		return false, helper.ClassifyDBError(err)
	}
	return n > 0, nil
}

func deleteRestricted(ctx context.Context, db *gorm.DB, table records.Table, id uint, refColumn string) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var code string
		res := tx.Table(string(table)).Select("code").Where("id = ?", id).Limit(1).Scan(&code)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s id=%d", helper.ErrNotFound, table, id)
		}

		for _, ref := range []records.Table{records.TableBills, records.TableQuestions} {
			var n int64
			if err := tx.Table(string(ref)).Where(refColumn+" = ?", code).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: %s %s used by %d %s", helper.ErrInUse, table, code, n, ref)
			}
		}
		return records.DeleteByID(ctx, tx, table, id)
	})
	return helper.ClassifyDBError(err)
}
