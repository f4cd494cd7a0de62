package admin_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/testutil"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeAPI(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()
	var out apiResponse
	require.NoError(t, json.Unmarshal([]byte(testutil.ReadBody(t, resp)), &out))
	return out
}

func TestDashboardStats(t *testing.T) {
	app, db := testutil.NewApp(t)

	testutil.RegisterVeli(t, app, "veli@example.com", "sifre", "Veli", "Hesap")
	session := testutil.Login(t, app, "veli@example.com", "sifre")
	for _, ad := range []string{"Bir", "Iki"} {
		testutil.PostForm(t, app, "/api/ogrenci_ekle", session, url.Values{
			"ad": {ad}, "soyad": {"Hesap"},
		})
	}

	require.NoError(t, database.CreateEtkinlik(db, &models.Etkinlik{
		Baslik: "Aktif", BaslangicTarihi: time.Now(), BitisTarihi: time.Now(),
		Durum: models.EtkinlikAktif,
	}))
	require.NoError(t, database.CreateEtkinlik(db, &models.Etkinlik{
		Baslik: "Biten", BaslangicTarihi: time.Now(), BitisTarihi: time.Now(),
		Durum: models.EtkinlikTamamlandi,
	}))

	var ogrenci models.Ogrenci
	require.NoError(t, db.Where("ad = ?", "Bir").First(&ogrenci).Error)
	require.NoError(t, database.CreateOdeme(db, &models.Odeme{
		OgrenciID: ogrenci.ID, Miktar: 100, Durum: models.OdemeBekliyor,
	}))
	require.NoError(t, database.CreateOdeme(db, &models.Odeme{
		OgrenciID: ogrenci.ID, Miktar: 100, Durum: models.OdemeOdendi,
	}))

	adminSession := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.Get(t, app, "/admin", adminSession)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.ReadBody(t, resp)
	assert.Contains(t, body, "Toplam öğrenci: 2")
	assert.Contains(t, body, "Toplam veli: 1")
	assert.Contains(t, body, "Aktif etkinlik: 1")
	assert.Contains(t, body, "Bekleyen ödeme: 1")
}

func TestAdminEtkinliklerShowsAllStatuses(t *testing.T) {
	app, db := testutil.NewApp(t)

	statuses := map[string]models.EtkinlikDurum{
		"PlanlananBaslik": models.EtkinlikPlanlaniyor,
		"AktifBaslik":     models.EtkinlikAktif,
		"BitenBaslik":     models.EtkinlikTamamlandi,
		"IptalBaslik":     models.EtkinlikIptal,
	}
	for baslik, durum := range statuses {
		require.NoError(t, database.CreateEtkinlik(db, &models.Etkinlik{
			Baslik: baslik, BaslangicTarihi: time.Now(), BitisTarihi: time.Now(),
			Durum: durum,
		}))
	}

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.Get(t, app, "/admin/etkinlikler", session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.ReadBody(t, resp)
	for baslik := range statuses {
		assert.Contains(t, body, baslik)
	}
}

func TestAdminOgrencilerListsAllGuardiansChildren(t *testing.T) {
	app, _ := testutil.NewApp(t)

	testutil.RegisterVeli(t, app, "bir@example.com", "sifre", "Bir", "Veli")
	testutil.RegisterVeli(t, app, "iki@example.com", "sifre", "İki", "Veli")
	sessionA := testutil.Login(t, app, "bir@example.com", "sifre")
	sessionB := testutil.Login(t, app, "iki@example.com", "sifre")
	testutil.PostForm(t, app, "/api/ogrenci_ekle", sessionA, url.Values{
		"ad": {"CocukBir"}, "soyad": {"Veli"},
	})
	testutil.PostForm(t, app, "/api/ogrenci_ekle", sessionB, url.Values{
		"ad": {"CocukIki"}, "soyad": {"Veli"},
	})

	// Admin listing is unfiltered.
	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.Get(t, app, "/admin/ogrenciler", session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.ReadBody(t, resp)
	assert.Contains(t, body, "CocukBir")
	assert.Contains(t, body, "CocukIki")
}

func TestAdminPagesDenyGuardian(t *testing.T) {
	app, _ := testutil.NewApp(t)

	testutil.RegisterVeli(t, app, "veli@example.com", "sifre", "Veli", "Hesap")
	session := testutil.Login(t, app, "veli@example.com", "sifre")

	for _, path := range []string{"/admin", "/admin/ogrenciler", "/admin/veliler", "/admin/etkinlikler"} {
		resp := testutil.Get(t, app, path, session)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestVeliPagesDenyAdmin(t *testing.T) {
	app, _ := testutil.NewApp(t)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.Get(t, app, "/veli", session)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestEtkinlikEkle(t *testing.T) {
	app, db := testutil.NewApp(t)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.PostJSON(t, app, "/api/etkinlik_ekle", session, `{
		"baslik": "Satranç Turnuvası",
		"aciklama": "Kulüp içi turnuva",
		"baslangic_tarihi": "2026-09-12 10:00",
		"bitis_tarihi": "2026-09-12 16:00",
		"konum": "Kulüp Salonu",
		"kapasite": 32,
		"ucret": 50
	}`)
	out := decodeAPI(t, resp)
	assert.True(t, out.Success, out.Message)

	var etkinlik models.Etkinlik
	require.NoError(t, db.Where("baslik = ?", "Satranç Turnuvası").First(&etkinlik).Error)
	assert.Equal(t, models.EtkinlikPlanlaniyor, etkinlik.Durum)
	assert.Equal(t, 32, etkinlik.Kapasite)
}

func TestEtkinlikEkleRejectsReversedDates(t *testing.T) {
	app, db := testutil.NewApp(t)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.PostJSON(t, app, "/api/etkinlik_ekle", session, `{
		"baslik": "Ters Tarih",
		"baslangic_tarihi": "2026-09-12 16:00",
		"bitis_tarihi": "2026-09-12 10:00"
	}`)
	out := decodeAPI(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Bitiş tarihi başlangıçtan önce olamaz!", out.Message)

	var count int64
	require.NoError(t, db.Model(&models.Etkinlik{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEtkinlikEkleRejectsNegativeFee(t *testing.T) {
	app, _ := testutil.NewApp(t)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.PostJSON(t, app, "/api/etkinlik_ekle", session, `{
		"baslik": "Eksi Ücret",
		"baslangic_tarihi": "2026-09-12 10:00",
		"bitis_tarihi": "2026-09-12 16:00",
		"ucret": -10
	}`)
	out := decodeAPI(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Ücret negatif olamaz!", out.Message)
}

func TestEtkinlikEkleDeniedForGuardian(t *testing.T) {
	app, _ := testutil.NewApp(t)

	testutil.RegisterVeli(t, app, "veli@example.com", "sifre", "Veli", "Hesap")
	session := testutil.Login(t, app, "veli@example.com", "sifre")

	resp := testutil.PostJSON(t, app, "/api/etkinlik_ekle", session, `{"baslik": "Deneme"}`)
	out := decodeAPI(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Yetkisiz işlem!", out.Message)
}

func TestOdemeEkle(t *testing.T) {
	app, db := testutil.NewApp(t)

	testutil.RegisterVeli(t, app, "veli@example.com", "sifre", "Veli", "Hesap")
	veliSession := testutil.Login(t, app, "veli@example.com", "sifre")
	testutil.PostForm(t, app, "/api/ogrenci_ekle", veliSession, url.Values{
		"ad": {"Cem"}, "soyad": {"Hesap"},
	})
	var ogrenci models.Ogrenci
	require.NoError(t, db.Where("ad = ?", "Cem").First(&ogrenci).Error)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.PostForm(t, app, "/api/odeme_ekle", session, url.Values{
		"ogrenci_id":   {fmt.Sprint(ogrenci.ID)},
		"miktar":       {"250.50"},
		"aciklama":     {"Eylül aidatı"},
		"odeme_tarihi": {"2026-09-01"},
	})
	out := decodeAPI(t, resp)
	assert.True(t, out.Success, out.Message)

	var odeme models.Odeme
	require.NoError(t, db.Where("ogrenci_id = ?", ogrenci.ID).First(&odeme).Error)
	assert.Equal(t, 250.50, odeme.Miktar)
	assert.Equal(t, models.OdemeBekliyor, odeme.Durum)
	require.NotNil(t, odeme.OdemeTarihi)
}

func TestOdemeEkleUnknownStudent(t *testing.T) {
	app, _ := testutil.NewApp(t)

	session := testutil.Login(t, app, database.SeedAdminEmail, "admin123")
	resp := testutil.PostForm(t, app, "/api/odeme_ekle", session, url.Values{
		"ogrenci_id": {"9999"},
		"miktar":     {"100"},
	})
	out := decodeAPI(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Öğrenci bulunamadı!", out.Message)
}
