// Package records holds the table-level operations shared by every record kind.
package records

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	helper "legisq_backend/internals/helpers"
)

type Table string

const (
	TableMinistries     Table = "ministries"
	TableStates         Table = "states"
	TableBills          Table = "bills"
	TableQuestions      Table = "questions"
	TableCurrentAffairs Table = "current_affairs"
)

func (t Table) Valid() bool {
	switch t {
	case TableMinistries, TableStates, TableBills, TableQuestions, TableCurrentAffairs:
		return true
	}
	return false
}

// DeleteByID: hard delete satu row. ErrNotFound bila id tidak ada.
// Cek referensi (ministry/state) dilakukan pemanggil di transaksi yang sama.
func DeleteByID(ctx context.Context, db *gorm.DB, table Table, id uint) error {
	if !table.Valid() {
		return helper.NewFieldError("table", fmt.Sprintf("unknown table %q", table))
	}
	res := db.WithContext(ctx).Exec("DELETE FROM "+string(table)+" WHERE id = ?", id)
	if res.Error != nil {
		return helper.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s id=%d", helper.ErrNotFound, table, id)
	}
	return nil
}
