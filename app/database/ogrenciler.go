package database

import (
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// CreateOgrenci inserts a new student owned by a guardian. Identical
// submissions produce distinct rows; there is no deduplication.
func CreateOgrenci(db *gorm.DB, ogrenci *models.Ogrenci) error {
	return db.Create(ogrenci).Error
}

// GetOgrenciByID fetches a single student.
func GetOgrenciByID(db *gorm.DB, id uint) (*models.Ogrenci, error) {
	var ogrenci models.Ogrenci
	if err := db.First(&ogrenci, id).Error; err != nil {
		return nil, err
	}
	return &ogrenci, nil
}

// GetOgrencilerByVeliID returns the students of one guardian, in
// insertion order.
func GetOgrencilerByVeliID(db *gorm.DB, veliID uint) ([]models.Ogrenci, error) {
	var ogrenciler []models.Ogrenci
	err := db.Where("veli_id = ?", veliID).Order("id").Find(&ogrenciler).Error
	return ogrenciler, err
}

// GetAllOgrenciler returns every student, unfiltered.
func GetAllOgrenciler(db *gorm.DB) ([]models.Ogrenci, error) {
	var ogrenciler []models.Ogrenci
	err := db.Order("id").Find(&ogrenciler).Error
	return ogrenciler, err
}
