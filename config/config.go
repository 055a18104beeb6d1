package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"meal-planner-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback. Load refreshes it
// after the .env file has been applied.
var JWTSecret = []byte(getEnv("JWT_SECRET", "meal_planner_dev_secret"))

// JWTTTL is how long issued tokens stay valid.
var JWTTTL = 24 * time.Hour

type Config struct {
	Port        string
	GinMode     string
	DBDriver    string
	DatabaseURL string
	AdminEmails []string
	CORSOrigins []string

	MenuAPIURL     string
	MenuLocation   string
	MenuAPITimeout time.Duration

	IngestEnabled   bool
	IngestHourUTC   int
	IngestMinuteUTC int

	Archive ArchiveConfig
}

// ArchiveConfig points at an S3-compatible bucket for raw menu payloads.
// An empty Bucket disables archiving.
type ArchiveConfig struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads configuration from the environment, applying a .env file first
// when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", "meal_planner_dev_secret"))
	JWTTTL = time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour

	hour := getEnvInt("INGEST_HOUR_UTC", 5)
	if hour < 0 || hour > 23 {
		log.Printf("config: INGEST_HOUR_UTC out of range (%d), using 5", hour)
		hour = 5
	}
	minute := getEnvInt("INGEST_MINUTE_UTC", 0)
	if minute < 0 || minute > 59 {
		log.Printf("config: INGEST_MINUTE_UTC out of range (%d), using 0", minute)
		minute = 0
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: getEnv("DATABASE_URL", "meal_planner.db"),
		AdminEmails: splitList(strings.ToLower(os.Getenv("ADMIN_EMAILS"))),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		MenuAPIURL:     getEnv("MENU_API_URL", "https://menu.dartmouth.edu/menuapi/mealitems"),
		MenuLocation:   getEnv("MENU_LOCATION", "53 Commons"),
		MenuAPITimeout: time.Duration(getEnvInt("MENU_API_TIMEOUT_SECONDS", 15)) * time.Second,

		IngestEnabled:   getEnvBool("INGEST_ENABLED", true),
		IngestHourUTC:   hour,
		IngestMinuteUTC: minute,

		Archive: ArchiveConfig{
			Bucket:    os.Getenv("ARCHIVE_BUCKET"),
			Endpoint:  os.Getenv("ARCHIVE_ENDPOINT"),
			Region:    getEnv("ARCHIVE_REGION", "auto"),
			AccessKey: os.Getenv("ARCHIVE_ACCESS_KEY"),
			SecretKey: os.Getenv("ARCHIVE_SECRET_KEY"),
		},
	}
}

// IsAdminEmail reports whether email is listed in ADMIN_EMAILS.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

// OpenDB connects with the named driver and migrates every model.
// The sqlite DSN ":memory:" is pinned to one connection so all callers share
// the same database.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// Auto-migrate all models
	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.UserPreferences{},
		&models.MealPlan{},
		&models.IngestLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// InitDB opens the configured database into DB or exits.
func InitDB(cfg *Config) {
	var err error
	DB, err = OpenDB(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("✅ Database connected and migrated successfully")
}
