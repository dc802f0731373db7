package database

import (
	"fmt"
	"log"
	"os"

	"learnhub/config"
	"learnhub/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection using the configured driver
func ConnectDb() {
	dialector := openDialector()

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the store relies on for idempotent
	// enrollment creation.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
}

func openDialector() gorm.Dialector {
	switch config.AppConfig.DBDriver {
	case "sqlite":
		return sqlite.Open(config.AppConfig.DBName + ".db")
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			config.AppConfig.DBName,
		)
		return mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			config.AppConfig.DBName,
			os.Getenv("DB_PORT"),
		)
		return postgres.Open(dsn)
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
