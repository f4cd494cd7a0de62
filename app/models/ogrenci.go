package models

import "time"

// Ogrenci is a club member record owned by exactly one Veli.
type Ogrenci struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	VeliID       uint         `json:"veli_id" gorm:"not null;index"`
	Ad           string       `json:"ad" gorm:"size:50;not null"`
	Soyad        string       `json:"soyad" gorm:"size:50;not null"`
	Sinif        string       `json:"sinif" gorm:"size:10"`
	Okul         string       `json:"okul" gorm:"size:100"`
	DogumTarihi  *time.Time   `json:"dogum_tarihi" gorm:"type:date"`
	KayitTarihi  time.Time    `json:"kayit_tarihi" gorm:"autoCreateTime"`
	Durum        OgrenciDurum `json:"durum" gorm:"size:20;not null;default:aktif"`

	Veli       *Veli             `json:"-" gorm:"foreignKey:VeliID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Katilimlar []EtkinlikKatilim `json:"katilimlar,omitempty" gorm:"foreignKey:OgrenciID"`
	Odemeler   []Odeme           `json:"odemeler,omitempty" gorm:"foreignKey:OgrenciID"`
}
