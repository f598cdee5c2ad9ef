// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	authsvc "legisq_backend/internals/features/auth/service"
	summarysvc "legisq_backend/internals/features/summaries/service"
	"legisq_backend/internals/helpers/storage"
	authmw "legisq_backend/internals/middlewares/auth"
	routeDetails "legisq_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// Deps: semua dependency yang dibagikan ke route.
type Deps struct {
	DB         *gorm.DB
	Files      storage.Storage
	Auth       *authsvc.Authenticator
	Summarizer *summarysvc.Summarizer
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d.DB)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AdminAuthRoutes(app, d.Auth)

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up ADMIN group (JWT admin)...")
	admin := app.Group("/api/a", authmw.AdminAuth(d.Auth))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting legislative routes...")
	routeDetails.LegislativePublicRoutes(public, d.DB, d.Files)
	routeDetails.LegislativeAdminRoutes(admin, d.DB, d.Files)

	log.Println("[INFO] Mounting summary routes...")
	routeDetails.SummaryPublicRoutes(public, d.DB, d.Summarizer)
}
