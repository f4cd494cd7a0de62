package models

import "time"

// Odeme is a manually tracked payment record against a student. No
// payment gateway is involved anywhere.
type Odeme struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OgrenciID   uint       `json:"ogrenci_id" gorm:"not null;index"`
	Miktar      float64    `json:"miktar" gorm:"not null"`
	OdemeTarihi *time.Time `json:"odeme_tarihi" gorm:"type:date"`
	Aciklama    string     `json:"aciklama" gorm:"size:200"`
	Durum       OdemeDurum `json:"durum" gorm:"size:20;not null;default:bekliyor"`
	CreatedAt   time.Time  `json:"created_at"`

	Ogrenci *Ogrenci `json:"-" gorm:"foreignKey:OgrenciID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
