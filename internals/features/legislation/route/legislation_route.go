package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	legisctl "legisq_backend/internals/features/legislation/controller"
	"legisq_backend/internals/helpers/storage"
)

func LegislationPublicRoutes(r fiber.Router, db *gorm.DB, files storage.Storage) {
	billCtrl := legisctl.NewBillController(db, files)
	questionCtrl := legisctl.NewQuestionController(db, files)

	bills := r.Group("/bills")
	bills.Get("/", billCtrl.List)
	bills.Get("/suggestions", billCtrl.Suggestions)
	bills.Get("/:id", billCtrl.Detail)
	bills.Get("/:id/pdf", billCtrl.DownloadPDF)

	questions := r.Group("/questions")
	questions.Get("/", questionCtrl.List)
	questions.Get("/suggestions", questionCtrl.Suggestions)
	questions.Get("/:id", questionCtrl.Detail)
	questions.Get("/:id/pdf", questionCtrl.DownloadPDF)
}

func LegislationAdminRoutes(admin fiber.Router, db *gorm.DB, files storage.Storage) {
	billCtrl := legisctl.NewBillController(db, files)
	questionCtrl := legisctl.NewQuestionController(db, files)

	bills := admin.Group("/bills")
	bills.Post("/", billCtrl.Create)
	bills.Patch("/:id/status", billCtrl.UpdateStatus)
	bills.Delete("/:id", billCtrl.Delete)

	questions := admin.Group("/questions")
	questions.Post("/", questionCtrl.Create)
	questions.Patch("/:id/status", questionCtrl.UpdateStatus)
	questions.Delete("/:id", questionCtrl.Delete)
}
