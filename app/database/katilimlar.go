package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
)

var (
	// ErrDuplicateKatilim is returned when a student is already
	// registered for the event.
	ErrDuplicateKatilim = errors.New("öğrenci bu etkinliğe zaten kayıtlı")
	// ErrEtkinlikDolu is returned when the event has reached capacity.
	ErrEtkinlikDolu = errors.New("etkinlik kontenjanı dolu")
)

// CreateKatilim registers a student for an event. Duplicate
// registrations and capacity overflows are rejected.
func CreateKatilim(db *gorm.DB, katilim *models.EtkinlikKatilim) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.EtkinlikKatilim{}).
			Where("etkinlik_id = ? AND ogrenci_id = ?", katilim.EtkinlikID, katilim.OgrenciID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateKatilim
		}

		etkinlik, err := GetEtkinlikByID(tx, katilim.EtkinlikID)
		if err != nil {
			return err
		}
		if etkinlik.Kapasite > 0 {
			var kayitli int64
			err = tx.Model(&models.EtkinlikKatilim{}).
				Where("etkinlik_id = ?", katilim.EtkinlikID).
				Count(&kayitli).Error
			if err != nil {
				return err
			}
			if kayitli >= int64(etkinlik.Kapasite) {
				return ErrEtkinlikDolu
			}
		}

		return tx.Create(katilim).Error
	})
}

// GetKatilimlarByEtkinlikID lists the registrations of one event.
func GetKatilimlarByEtkinlikID(db *gorm.DB, etkinlikID uint) ([]models.EtkinlikKatilim, error) {
	var katilimlar []models.EtkinlikKatilim
	err := db.Where("etkinlik_id = ?", etkinlikID).Order("id").Find(&katilimlar).Error
	return katilimlar, err
}
