package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finance-portal/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	seedCategories(db)
	seedAdminUser(db)

	return db, nil
}

// Migrate applies the schema for every portal entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.BudgetCategory{},
		&models.Budget{},
		&models.Expense{},
		&models.Product{},
		&models.Venue{},
		&models.Notification{},
		&models.ActivityLog{},
	)
}

func seedCategories(db *gorm.DB) {
	categories := []models.BudgetCategory{
		{Name: "Equipment", Order: 1},
		{Name: "Venue & Logistics", Order: 2},
		{Name: "Refreshments", Order: 3},
		{Name: "Printing & Stationery", Order: 4},
		{Name: "Prizes & Certificates", Order: 5},
		{Name: "Miscellaneous", Order: 6},
	}

	for _, category := range categories {
		var existing models.BudgetCategory
		result := db.Where("name = ?", category.Name).First(&existing)
		if result.Error != nil {
			category.IsActive = true
			db.Create(&category)
		}
	}
}

// seedAdminUser creates the bootstrap admin when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if result := db.Where("email = ?", email).First(&existing); result.Error == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	db.Create(&models.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Portal Admin",
		Role:     models.RoleAdmin,
		IsActive: true,
	})
}
