package database

import (
	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

// GetDashboardStats returns the counters for the admin dashboard.
// Plain aggregate reads, computed fresh on every call.
func GetDashboardStats(db *gorm.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.Model(&models.Ogrenci{}).Count(&stats.OgrenciSayisi).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Veli{}).Count(&stats.VeliSayisi).Error; err != nil {
		return nil, err
	}
	err := db.Model(&models.Etkinlik{}).
		Where("durum = ?", models.EtkinlikAktif).
		Count(&stats.AktifEtkinlikler).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.Odeme{}).
		Where("durum = ?", models.OdemeBekliyor).
		Count(&stats.BekleyenOdemeler).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
