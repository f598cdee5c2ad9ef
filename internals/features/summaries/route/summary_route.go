package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	summaryctl "legisq_backend/internals/features/summaries/controller"
	"legisq_backend/internals/features/summaries/service"
)

func SummaryPublicRoutes(r fiber.Router, db *gorm.DB, s *service.Summarizer) {
	ctrl := summaryctl.NewSummaryController(db, s)

	r.Get("/bills/:id/summary", ctrl.BillSummary)
	r.Get("/questions/:id/summary", ctrl.QuestionSummary)
}
