package database

import (
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// CreateOdeme inserts a new payment record for a student.
func CreateOdeme(db *gorm.DB, odeme *models.Odeme) error {
	return db.Create(odeme).Error
}

// GetOdemelerByVeliID returns the payments of all of a guardian's
// children. Ordering is children in insertion order, then each child's
// payments in insertion order; there is no global date sort.
func GetOdemelerByVeliID(db *gorm.DB, veliID uint) ([]models.Odeme, error) {
	ogrenciler, err := GetOgrencilerByVeliID(db, veliID)
	if err != nil {
		return nil, err
	}

	var odemeler []models.Odeme
	for _, ogrenci := range ogrenciler {
		var cocukOdemeler []models.Odeme
		err := db.Where("ogrenci_id = ?", ogrenci.ID).Order("id").Find(&cocukOdemeler).Error
		if err != nil {
			return nil, err
		}
		odemeler = append(odemeler, cocukOdemeler...)
	}
	return odemeler, nil
}
