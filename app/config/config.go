package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	DB        *gorm.DB
	SecretKey string
	Port      string
	Upload    UploadConfig
}

// UploadConfig holds the file-upload policy. No upload route exists
// yet; the body limit is still enforced app-wide.
type UploadConfig struct {
	Folder            string
	MaxContentLength  int
	AllowedExtensions []string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables, falling back
// to the development defaults.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	AppConfig = &Config{
		SecretKey: getEnv("SECRET_KEY", "akil-zeka-kulubu-secret-key-2024"),
		Port:      getEnv("PORT", "5000"),
		Upload: UploadConfig{
			Folder:            "static/uploads",
			MaxContentLength:  16 * 1024 * 1024, // 16MB
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "pdf"},
		},
	}
}

// InitDB opens the SQLite database and stores the handle on AppConfig.
func InitDB() {
	dsn := getEnv("DATABASE_URL", "club_database.db")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access database handle:", err)
	}
	sqlDB.SetMaxOpenConns(1)

	AppConfig.DB = db
	log.Println("Database connected successfully:", dsn)
}

func GetDB() *gorm.DB {
	return AppConfig.DB
}

func GetSecretKey() string {
	return AppConfig.SecretKey
}

// AllowedFile reports whether the filename carries one of the allowed
// upload extensions.
func AllowedFile(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range AppConfig.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
