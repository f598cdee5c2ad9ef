package details

import (
	CurrentAffairRoutes "legisq_backend/internals/features/current_affairs/route"
	LegislationRoutes "legisq_backend/internals/features/legislation/route"
	MetadataRoutes "legisq_backend/internals/features/metadata/route"
	"legisq_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Route publik tanpa token
// Contoh akses: /api/public/bills?body=lok_sabha&q=finance
func LegislativePublicRoutes(api fiber.Router, db *gorm.DB, files storage.Storage) {
	MetadataRoutes.MetadataPublicRoutes(api, db)
	LegislationRoutes.LegislationPublicRoutes(api, db, files)
	CurrentAffairRoutes.CurrentAffairPublicRoutes(api, db, files)
}

// ✅ Route admin (JWT admin)
// Contoh akses: /api/a/bills
func LegislativeAdminRoutes(api fiber.Router, db *gorm.DB, files storage.Storage) {
	MetadataRoutes.MetadataAdminRoutes(api, db)
	LegislationRoutes.LegislationAdminRoutes(api, db, files)
	CurrentAffairRoutes.CurrentAffairAdminRoutes(api, db, files)
}
