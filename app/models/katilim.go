package models

import "time"

// EtkinlikKatilim links a student to an event. A student can be
// registered to a given event at most once.
type EtkinlikKatilim struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	EtkinlikID  uint         `json:"etkinlik_id" gorm:"not null;uniqueIndex:idx_etkinlik_ogrenci"`
	OgrenciID   uint         `json:"ogrenci_id" gorm:"not null;uniqueIndex:idx_etkinlik_ogrenci"`
	KayitTarihi time.Time    `json:"kayit_tarihi" gorm:"autoCreateTime"`
	Durum       KatilimDurum `json:"durum" gorm:"size:20;not null;default:kayıtlı"`

	Etkinlik *Etkinlik `json:"-" gorm:"foreignKey:EtkinlikID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Ogrenci  *Ogrenci  `json:"-" gorm:"foreignKey:OgrenciID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
