package models

// DashboardStats holds the counters shown on the admin dashboard.
type DashboardStats struct {
	OgrenciSayisi    int64 `json:"ogrenci_sayisi"`
	VeliSayisi       int64 `json:"veli_sayisi"`
	AktifEtkinlikler int64 `json:"aktif_etkinlikler"`
	BekleyenOdemeler int64 `json:"bekleyen_odemeler"`
}
