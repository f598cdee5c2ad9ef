package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	Port string

	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration

	StorageDriver  string
	StorageRoot    string
	PDFDir         string
	MaxUploadBytes int64

	GeminiAPIKey   string
	GeminiModel    string
	SummaryTimeout time.Duration
	SummaryTTL     time.Duration
	RedisURL       string

	CorsOrigins    string
	TrustedProxies []string
	RequestTimeout time.Duration
	SeedOnStart    bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in production, using system ENV")
	}

	Port = GetEnv("PORT", "3000")

	JWTSecret = GetEnv("JWT_SECRET")
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")
	AdminTokenTTL = GetEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour)

	StorageDriver = strings.ToLower(GetEnv("STORAGE_DRIVER", "local"))
	StorageRoot = GetEnv("STORAGE_ROOT", ".")
	PDFDir = GetEnv("PDF_DIR", "pdfs")
	MaxUploadBytes = int64(GetEnvInt("MAX_UPLOAD_MB", 20)) << 20

	GeminiAPIKey = GetEnv("GEMINI_API_KEY")
	GeminiModel = GetEnv("GEMINI_MODEL", "gemini-2.5-flash")
	SummaryTimeout = GetEnvDuration("SUMMARY_TIMEOUT", 30*time.Second)
	SummaryTTL = GetEnvDuration("SUMMARY_CACHE_TTL", 24*time.Hour)
	RedisURL = GetEnv("REDIS_URL")

	CorsOrigins = GetEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	TrustedProxies = GetEnvList("TRUSTED_PROXIES")
	RequestTimeout = GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second)
	SeedOnStart = GetEnvBool("SEED_ON_START", false)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if AdminPassword == "" && AdminPasswordHash == "" {
		log.Println("❌ ADMIN_PASSWORD / ADMIN_PASSWORD_HASH is not set, admin login disabled")
	}
	if GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY is not set, summaries will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
		log.Printf("[WARN] invalid int for %s=%q, using %d", key, v, def)
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[WARN] invalid bool for %s=%q, using %t", key, v, def)
	}
	return def
}

// GetEnvList memecah nilai dipisah koma; entri kosong dibuang.
func GetEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(GetEnv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnvDuration menerima "30s", "12h", atau angka polos (detik).
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("[WARN] invalid duration for %s=%q, using %s", key, v, def)
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
