package models

// Rol defines the two account roles in the system.
type Rol string

const (
	RolAdmin Rol = "admin"
	RolVeli  Rol = "veli"
)

// OgrenciDurum defines the possible status values for a student.
type OgrenciDurum string

const (
	OgrenciAktif OgrenciDurum = "aktif"
	OgrenciPasif OgrenciDurum = "pasif"
)

// EtkinlikDurum defines the lifecycle states of an event.
type EtkinlikDurum string

const (
	EtkinlikPlanlaniyor EtkinlikDurum = "planlanıyor"
	EtkinlikAktif       EtkinlikDurum = "aktif"
	EtkinlikTamamlandi  EtkinlikDurum = "tamamlandı"
	EtkinlikIptal       EtkinlikDurum = "iptal"
)

// KatilimDurum defines the attendance outcome of an event registration.
type KatilimDurum string

const (
	KatilimKayitli   KatilimDurum = "kayıtlı"
	KatilimKatildi   KatilimDurum = "katıldı"
	KatilimKatilmadi KatilimDurum = "katılmadı"
)

// OdemeDurum defines the status of a payment record.
type OdemeDurum string

const (
	OdemeBekliyor OdemeDurum = "bekliyor"
	OdemeOdendi   OdemeDurum = "odendi"
	OdemeIptal    OdemeDurum = "iptal"
)
