package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cactl "legisq_backend/internals/features/current_affairs/controller"
	"legisq_backend/internals/helpers/storage"
)

func CurrentAffairPublicRoutes(r fiber.Router, db *gorm.DB, files storage.Storage) {
	ctrl := cactl.NewCurrentAffairController(db, files)

	g := r.Group("/current-affairs")
	g.Get("/", ctrl.List)
	g.Get("/:id/pdf", ctrl.DownloadPDF)
}

func CurrentAffairAdminRoutes(admin fiber.Router, db *gorm.DB, files storage.Storage) {
	ctrl := cactl.NewCurrentAffairController(db, files)

	g := admin.Group("/current-affairs")
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}
