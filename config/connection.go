package config

import (
	"log"
	"os"

	"legalconnect/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionDb opens the Postgres connection and migrates the two account
// collections plus the audit log. TranslateError lets unique-index
// violations surface as gorm.ErrDuplicatedKey.
func ConnectionDb() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("error connect to database %s", err)
	}

	if err := db.AutoMigrate(&entity.User{}, &entity.Lawyer{}, &entity.AuditLog{}); err != nil {
		log.Fatalf("error migrating schema %s", err)
	}
	return db
}
