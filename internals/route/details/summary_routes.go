package details

import (
	SummaryRoutes "legisq_backend/internals/features/summaries/route"
	summarysvc "legisq_backend/internals/features/summaries/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Contoh akses: /api/public/bills/12/summary
func SummaryPublicRoutes(api fiber.Router, db *gorm.DB, s *summarysvc.Summarizer) {
	SummaryRoutes.SummaryPublicRoutes(api, db, s)
}
