package models

// Veli is a guardian profile linked 1:1 to a User account.
type Veli struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	UserID  uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	Ad      string `json:"ad" gorm:"size:50;not null"`
	Soyad   string `json:"soyad" gorm:"size:50;not null"`
	Telefon string `json:"telefon" gorm:"size:15"`
	Adres   string `json:"adres" gorm:"type:text"`

	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Ogrenciler []Ogrenci `json:"ogrenciler,omitempty" gorm:"foreignKey:VeliID"`
}
