package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// SeedAdminEmail is the fixed address of the bootstrap administrator.
const SeedAdminEmail = "admin@akilzeka.com"

const seedAdminPassword = "admin123"

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Veli{},
		&models.Ogrenci{},
		&models.Etkinlik{},
		&models.EtkinlikKatilim{},
		&models.Odeme{},
	)
}

// SeedAdmin ensures the default admin account exists. Safe to call on
// every startup.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", SeedAdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), 14)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        SeedAdminEmail,
		PasswordHash: string(hash),
		Rol:          models.RolAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Default admin account created:", SeedAdminEmail)
	return nil
}
