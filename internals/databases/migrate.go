package database

import (
	"log"

	"gorm.io/gorm"

	caModel "legisq_backend/internals/features/current_affairs/model"
	legisModel "legisq_backend/internals/features/legislation/model"
	metaModel "legisq_backend/internals/features/metadata/model"
)

// Models urut sesuai dependensi referensi (metadata dulu).
func Models() []any {
	return []any{
		&metaModel.MinistryModel{},
		&metaModel.StateModel{},
		&legisModel.BillModel{},
		&legisModel.QuestionModel{},
		&caModel.CurrentAffairModel{},
	}
}

// Migrate idempotent: aman dipanggil berkali-kali, data lama tetap.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("✅ Schema migrated (ministries, states, bills, questions, current_affairs)")
	return nil
}
