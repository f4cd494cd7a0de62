package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("bu e-posta adresi zaten kullanılıyor")

// GetUserByEmail looks up an account by email. Returns
// gorm.ErrRecordNotFound when no account exists.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether any account uses the given email.
func EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateUserWithVeli creates the account and its guardian profile as
// one unit. A failure at any point leaves no rows behind.
func CreateUserWithVeli(db *gorm.DB, user *models.User, veli *models.Veli) error {
	return db.Transaction(func(tx *gorm.DB) error {
		taken, err := EmailExists(tx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		veli.UserID = user.ID
		return tx.Create(veli).Error
	})
}
