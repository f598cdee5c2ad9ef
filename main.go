package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"legisq_backend/internals/configs"
	database "legisq_backend/internals/databases"
	authsvc "legisq_backend/internals/features/auth/service"
	summarysvc "legisq_backend/internals/features/summaries/service"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
	middlewares "legisq_backend/internals/middlewares"
	routes "legisq_backend/internals/route"
	"legisq_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(middlewares.ProxyConfig(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             int(configs.MaxUploadBytes) + (1 << 20), // pdf + field form
		ErrorHandler:          helper.FromFiberError,
	}, configs.TrustedProxies))

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timeout per request
	summaryTimeout := configs.SummaryTimeout + 5*time.Second
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("requestid", id)

		// ringkasan AI butuh waktu lebih lama dari query biasa
		timeout := configs.RequestTimeout
		if strings.HasSuffix(c.Path(), "/summary") {
			timeout = summaryTimeout
		}
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrate + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	database.WarmUpQueries()

	if configs.SeedOnStart {
		seeds.RunAllSeeds(database.DB)
	}

	// 📁 penyimpanan dokumen
	files, err := storage.NewFromConfig()
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}

	summarizer, closeSummarizer := buildSummarizer(files)
	defer closeSummarizer()

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:         database.DB,
		Files:      files,
		Auth:       authsvc.NewAuthenticatorFromConfig(),
		Summarizer: summarizer,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = summaryTimeout + 10*time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}

// buildSummarizer: Gemini bila GEMINI_API_KEY ada, cache Redis bila REDIS_URL ada.
func buildSummarizer(files storage.Storage) (*summarysvc.Summarizer, func()) {
	var provider summarysvc.Provider
	if configs.GeminiAPIKey != "" {
		p, err := summarysvc.NewGeminiProvider(context.Background(), configs.GeminiAPIKey, configs.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Gemini provider disabled: %v", err)
		} else {
			provider = p
		}
	}

	s := summarysvc.NewSummarizer(files, provider)
	s.Timeout = configs.SummaryTimeout
	s.TTL = configs.SummaryTTL

	closeFn := func() {}
	if configs.RedisURL != "" {
		cache, err := summarysvc.NewRedisCache(configs.RedisURL)
		if err != nil {
			log.Printf("⚠️ Redis summary cache disabled: %v", err)
		} else {
			s.Cache = cache
			closeFn = func() { _ = cache.Close() }
			log.Println("✅ Redis summary cache enabled")
		}
	}
	return s, closeFn
}
