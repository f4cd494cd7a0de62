package database

import (
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// CreateEtkinlik inserts a new event.
func CreateEtkinlik(db *gorm.DB, etkinlik *models.Etkinlik) error {
	return db.Create(etkinlik).Error
}

// GetEtkinlikByID fetches a single event.
func GetEtkinlikByID(db *gorm.DB, id uint) (*models.Etkinlik, error) {
	var etkinlik models.Etkinlik
	if err := db.First(&etkinlik, id).Error; err != nil {
		return nil, err
	}
	return &etkinlik, nil
}

// GetAllEtkinlikler returns every event regardless of status. Admin
// listing only.
func GetAllEtkinlikler(db *gorm.DB) ([]models.Etkinlik, error) {
	var etkinlikler []models.Etkinlik
	err := db.Order("id").Find(&etkinlikler).Error
	return etkinlikler, err
}

// GetAcikEtkinlikler returns events guardians may see: planned and
// active ones. Completed and cancelled events are excluded.
func GetAcikEtkinlikler(db *gorm.DB) ([]models.Etkinlik, error) {
	var etkinlikler []models.Etkinlik
	err := db.
		Where("durum IN ?", []models.EtkinlikDurum{models.EtkinlikPlanlaniyor, models.EtkinlikAktif}).
		Order("id").
		Find(&etkinlikler).Error
	return etkinlikler, err
}
