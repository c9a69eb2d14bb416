package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"github.com/rajstories/Aadhaar-Intelligence-System/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// seedStates is a compact sample of the state catalog.
var seedStates = []models.State{
	{Code: "UP", Name: "Uttar Pradesh"},
	{Code: "BR", Name: "Bihar"},
	{Code: "MH", Name: "Maharashtra"},
	{Code: "TN", Name: "Tamil Nadu"},
	{Code: "WB", Name: "West Bengal"},
}

var seedDistricts = []models.District{
	{Code: "UP-LKO", Name: "Lucknow", StateCode: "UP", Latitude: 26.8467, Longitude: 80.9462},
	{Code: "UP-VNS", Name: "Varanasi", StateCode: "UP", Latitude: 25.3176, Longitude: 82.9739},
	{Code: "UP-AGR", Name: "Agra", StateCode: "UP", Latitude: 27.1767, Longitude: 78.0081},
	{Code: "BR-PAT", Name: "Patna", StateCode: "BR", Latitude: 25.5941, Longitude: 85.1376},
	{Code: "BR-GAY", Name: "Gaya", StateCode: "BR", Latitude: 24.7914, Longitude: 85.0002},
	{Code: "MH-MUM", Name: "Mumbai", StateCode: "MH", Latitude: 19.0760, Longitude: 72.8777},
	{Code: "MH-PUN", Name: "Pune", StateCode: "MH", Latitude: 18.5204, Longitude: 73.8567},
	{Code: "TN-CHE", Name: "Chennai", StateCode: "TN", Latitude: 13.0827, Longitude: 80.2707},
	{Code: "WB-KOL", Name: "Kolkata", StateCode: "WB", Latitude: 22.5726, Longitude: 88.3639},
}

// main seeds the geography, sample metrics, alerts, and a super admin
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("AADHAAR INTELLIGENCE SYSTEM - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connection
	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.AisGorm.AutoMigrate(
		&models.State{},
		&models.District{},
		&models.EnrolmentMetric{},
		&models.IndexScore{},
		&models.Alert{},
		&models.Report{},
		&models.Admin{},
		&models.AdminSession{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedGeography()
	seedMetrics()
	seedAlerts()
	seedSuperAdmin()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Open GET /api/v1/metadata/filters to verify the catalog")
	fmt.Println()
}

func seedGeography() {
	if err := config.AisGorm.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seedStates).Error; err != nil {
		log.Fatalf("Failed to seed states: %v", err)
	}
	if err := config.AisGorm.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seedDistricts).Error; err != nil {
		log.Fatalf("Failed to seed districts: %v", err)
	}
	log.Printf("✓ Seeded %d states, %d districts", len(seedStates), len(seedDistricts))
}

func seedMetrics() {
	rng := rand.New(rand.NewSource(42)) // deterministic sample data

	var metrics []models.EnrolmentMetric
	var scores []models.IndexScore

	for year := 2023; year <= 2025; year++ {
		lastMonth := 12
		if year == 2025 {
			lastMonth = 6
		}
		for month := 1; month <= lastMonth; month++ {
			for _, d := range seedDistricts {
				for _, metricType := range models.MetricTypes {
					for _, ageGroup := range models.AgeGroups {
						metrics = append(metrics, models.EnrolmentMetric{
							ID:           uuid.Must(uuid.NewV7()),
							StateCode:    d.StateCode,
							DistrictCode: d.Code,
							Year:         year,
							Month:        month,
							MetricType:   metricType,
							AgeGroup:     ageGroup,
							Value:        int64(rng.Intn(5000) + 100),
						})
					}
				}
				for _, indexType := range models.IndexTypes {
					scores = append(scores, models.IndexScore{
						ID:           uuid.Must(uuid.NewV7()),
						StateCode:    d.StateCode,
						DistrictCode: d.Code,
						Year:         year,
						Month:        month,
						IndexType:    indexType,
						Score:        rng.Float64()*60 + 40, // 40-100
					})
				}
			}
		}
	}

	if err := config.AisGorm.CreateInBatches(&metrics, 500).Error; err != nil {
		log.Fatalf("Failed to seed metrics: %v", err)
	}
	if err := config.AisGorm.CreateInBatches(&scores, 500).Error; err != nil {
		log.Fatalf("Failed to seed index scores: %v", err)
	}
	log.Printf("✓ Seeded %d metrics, %d index scores", len(metrics), len(scores))
}

func seedAlerts() {
	alerts := []models.Alert{
		{
			ID:           uuid.Must(uuid.NewV7()),
			Type:         "enrolment_backlog",
			Severity:     "high",
			Title:        "Enrolment backlog in Varanasi",
			Description:  "Pending enrolments exceeded the 30-day threshold",
			StateCode:    "UP",
			DistrictCode: "UP-VNS",
			Status:       models.AlertStatusActive,
		},
		{
			ID:           uuid.Must(uuid.NewV7()),
			Type:         "auth_failure_spike",
			Severity:     "critical",
			Title:        "Authentication failure spike in Patna",
			Description:  "Failure rate above 15% for three consecutive days",
			StateCode:    "BR",
			DistrictCode: "BR-PAT",
			Status:       models.AlertStatusActive,
		},
		{
			ID:           uuid.Must(uuid.NewV7()),
			Type:         "update_lag",
			Severity:     "medium",
			Title:        "Biometric update lag in Pune",
			Description:  "Mandatory biometric updates trailing the state average",
			StateCode:    "MH",
			DistrictCode: "MH-PUN",
			Status:       models.AlertStatusResolved,
		},
	}

	if err := config.AisGorm.Create(&alerts).Error; err != nil {
		log.Fatalf("Failed to seed alerts: %v", err)
	}
	log.Printf("✓ Seeded %d alerts", len(alerts))
}

func seedSuperAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️  SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(password) {
		log.Fatal("❌ SEED_ADMIN_PASSWORD must be at least 8 characters")
	}

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.AisGorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		log.Printf("✓ Admin '%s' already exists, skipping", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         "AIS Administrator",
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := config.AisGorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}
	log.Printf("✓ Super admin created: %s (%s)", superAdmin.Email, superAdmin.ID)
}
