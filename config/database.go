package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// AisDB is the raw pgx pool, used for the heavy aggregation queries
	// (heatmap) where we want to stay close to SQL.
	AisDB *pgxpool.Pool

	// AisGorm is the GORM handle used by everything else.
	AisGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	dbURL := os.Getenv("AIS_DB_URL")
	if dbURL == "" {
		// fallback to local
		dbURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/ais_backend?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ AIS_DB_URL not set, using local default")
	}

	var err error
	AisDB, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to AIS database: %v", err)
	}

	if err = AisDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ AIS database ping failed: %v", err)
	}

	log.Println("✅ AIS database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var dsn string
	if os.Getenv("AIS_DB_URL") != "" {
		dsn = os.Getenv("AIS_DB_URL")
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=ais_backend port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ AIS_DB_URL not set, using local GORM default")
	}

	var err error
	AisGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to AIS database with GORM: %v", err)
	}
	if sqlDB, err := AisGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ AIS database connected (GORM)")
}

func CloseDB() {
	if AisDB != nil {
		AisDB.Close()
		log.Println("✅ AIS database connection closed (pgx)")
	}

	if AisGorm != nil {
		sqlDB, _ := AisGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ AIS database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout, enough for the heavier
// aggregation queries on managed Postgres.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
