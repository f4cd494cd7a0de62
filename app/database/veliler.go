package database

import (
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// GetVeliByUserID resolves the guardian profile linked to an account.
func GetVeliByUserID(db *gorm.DB, userID uint) (*models.Veli, error) {
	var veli models.Veli
	if err := db.Where("user_id = ?", userID).First(&veli).Error; err != nil {
		return nil, err
	}
	return &veli, nil
}

// GetAllVeliler returns every guardian profile, unfiltered.
func GetAllVeliler(db *gorm.DB) ([]models.Veli, error) {
	var veliler []models.Veli
	err := db.Order("id").Find(&veliler).Error
	return veliler, err
}
