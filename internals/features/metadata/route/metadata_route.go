package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	metactl "legisq_backend/internals/features/metadata/controller"
)

func MetadataPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := metactl.NewMetadataController(db)

	r.Get("/ministries", ctl.ListMinistries)
	r.Get("/states", ctl.ListStates)
}

func MetadataAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := metactl.NewMetadataController(db)

	ministries := admin.Group("/ministries")
	ministries.Post("/", ctl.CreateMinistry)
	ministries.Delete("/:id", ctl.DeleteMinistry)

	states := admin.Group("/states")
	states.Post("/", ctl.CreateState)
	states.Delete("/:id", ctl.DeleteState)
}
