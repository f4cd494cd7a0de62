package veli

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/config"
	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/auth"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/flash"
)

const dateLayout = "2006-01-02"

// currentVeli resolves the caller's guardian profile. Registration
// always creates the profile, but a missing one is still handled
// instead of panicking.
func currentVeli(c *fiber.Ctx) (*models.Veli, error) {
	user := auth.CurrentUser(c)
	return database.GetVeliByUserID(config.GetDB(), user.ID)
}

func profilYok(c *fiber.Ctx) error {
	flash.Set(c, "error", "Veli profiliniz bulunamadı!")
	return c.Redirect("/")
}

func DashboardPage(c *fiber.Ctx) error {
	veli, err := currentVeli(c)
	if err != nil {
		return profilYok(c)
	}
	cocuklar, err := database.GetOgrencilerByVeliID(config.GetDB(), veli.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("veli/dashboard", fiber.Map{
		"Title":    "Veli Paneli - Veli Portalı",
		"Flash":    flash.Get(c),
		"Veli":     veli,
		"Cocuklar": cocuklar,
	})
}

func CocuklarimPage(c *fiber.Ctx) error {
	veli, err := currentVeli(c)
	if err != nil {
		return profilYok(c)
	}
	cocuklar, err := database.GetOgrencilerByVeliID(config.GetDB(), veli.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("veli/cocuklarim", fiber.Map{
		"Title":    "Çocuklarım - Veli Portalı",
		"Flash":    flash.Get(c),
		"Cocuklar": cocuklar,
	})
}

// EtkinliklerPage lists only open events; completed and cancelled ones
// are not shown to guardians.
func EtkinliklerPage(c *fiber.Ctx) error {
	etkinlikler, err := database.GetAcikEtkinlikler(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("veli/etkinlikler", fiber.Map{
		"Title":       "Etkinlikler - Veli Portalı",
		"Flash":       flash.Get(c),
		"Etkinlikler": etkinlikler,
	})
}

func OdemelerPage(c *fiber.Ctx) error {
	veli, err := currentVeli(c)
	if err != nil {
		return profilYok(c)
	}
	odemeler, err := database.GetOdemelerByVeliID(config.GetDB(), veli.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("veli/odemeler", fiber.Map{
		"Title":    "Ödemeler - Veli Portalı",
		"Flash":    flash.Get(c),
		"Odemeler": odemeler,
	})
}

// OgrenciEkleAPI adds a child under the calling guardian. Always
// answers HTTP 200 with the success/message contract.
func OgrenciEkleAPI(c *fiber.Ctx) error {
	veli, err := currentVeli(c)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Veli profili bulunamadı!"})
	}

	ogrenci := &models.Ogrenci{
		VeliID: veli.ID,
		Ad:     c.FormValue("ad"),
		Soyad:  c.FormValue("soyad"),
		Sinif:  c.FormValue("sinif"),
		Okul:   c.FormValue("okul"),
		Durum:  models.OgrenciAktif,
	}
	if tarih := c.FormValue("dogum_tarihi"); tarih != "" {
		parsed, err := time.Parse(dateLayout, tarih)
		if err != nil {
			return c.JSON(fiber.Map{"success": false, "message": "Geçersiz doğum tarihi!"})
		}
		ogrenci.DogumTarihi = &parsed
	}

	if err := database.CreateOgrenci(config.GetDB(), ogrenci); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Öğrenci eklenemedi!"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Öğrenci başarıyla eklendi!"})
}

// EtkinlikKayitAPI registers one of the caller's children for an open
// event. The child must belong to the caller.
func EtkinlikKayitAPI(c *fiber.Ctx) error {
	veli, err := currentVeli(c)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Veli profili bulunamadı!"})
	}

	etkinlikID, err := strconv.ParseUint(c.FormValue("etkinlik_id"), 10, 32)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz etkinlik!"})
	}
	ogrenciID, err := strconv.ParseUint(c.FormValue("ogrenci_id"), 10, 32)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz öğrenci!"})
	}

	db := config.GetDB()

	ogrenci, err := database.GetOgrenciByID(db, uint(ogrenciID))
	if err != nil || ogrenci.VeliID != veli.ID {
		return c.JSON(fiber.Map{"success": false, "message": "Öğrenci bulunamadı!"})
	}

	etkinlik, err := database.GetEtkinlikByID(db, uint(etkinlikID))
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Etkinlik bulunamadı!"})
	}
	if etkinlik.Durum != models.EtkinlikPlanlaniyor && etkinlik.Durum != models.EtkinlikAktif {
		return c.JSON(fiber.Map{"success": false, "message": "Bu etkinliğe kayıt yapılamaz!"})
	}

	katilim := &models.EtkinlikKatilim{
		EtkinlikID: uint(etkinlikID),
		OgrenciID:  uint(ogrenciID),
		Durum:      models.KatilimKayitli,
	}
	if err := database.CreateKatilim(db, katilim); err != nil {
		switch err {
		case database.ErrDuplicateKatilim:
			return c.JSON(fiber.Map{"success": false, "message": "Öğrenci bu etkinliğe zaten kayıtlı!"})
		case database.ErrEtkinlikDolu:
			return c.JSON(fiber.Map{"success": false, "message": "Etkinlik kontenjanı dolu!"})
		default:
			return c.JSON(fiber.Map{"success": false, "message": "Kayıt yapılamadı!"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Etkinlik kaydı başarıyla oluşturuldu!"})
}
