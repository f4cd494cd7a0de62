package models

import "time"

// Etkinlik is a scheduled club activity students can participate in.
type Etkinlik struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Baslik          string        `json:"baslik" gorm:"size:200;not null" validate:"required"`
	Aciklama        string        `json:"aciklama" gorm:"type:text"`
	BaslangicTarihi time.Time     `json:"baslangic_tarihi" gorm:"not null"`
	BitisTarihi     time.Time     `json:"bitis_tarihi" gorm:"not null"`
	Konum           string        `json:"konum" gorm:"size:200"`
	Kapasite        int           `json:"kapasite"`
	Ucret           float64       `json:"ucret" gorm:"default:0"`
	Durum           EtkinlikDurum `json:"durum" gorm:"size:20;not null;default:planlanıyor"`
	CreatedAt       time.Time     `json:"created_at"`

	Katilimlar []EtkinlikKatilim `json:"katilimlar,omitempty" gorm:"foreignKey:EtkinlikID"`
}
