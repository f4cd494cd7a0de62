package admin

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/config"
	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/flash"
)

var validate = validator.New()

const dateTimeLayout = "2006-01-02 15:04"

func DashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title": "Yönetim Paneli - Veli Portalı",
		"Flash": flash.Get(c),
		"Stats": stats,
	})
}

func OgrencilerPage(c *fiber.Ctx) error {
	ogrenciler, err := database.GetAllOgrenciler(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/ogrenciler", fiber.Map{
		"Title":      "Öğrenciler - Veli Portalı",
		"Flash":      flash.Get(c),
		"Ogrenciler": ogrenciler,
	})
}

func VelilerPage(c *fiber.Ctx) error {
	veliler, err := database.GetAllVeliler(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/veliler", fiber.Map{
		"Title":   "Veliler - Veli Portalı",
		"Flash":   flash.Get(c),
		"Veliler": veliler,
	})
}

func EtkinliklerPage(c *fiber.Ctx) error {
	etkinlikler, err := database.GetAllEtkinlikler(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/etkinlikler", fiber.Map{
		"Title":       "Etkinlikler - Veli Portalı",
		"Flash":       flash.Get(c),
		"Etkinlikler": etkinlikler,
	})
}

func RaporlarPage(c *fiber.Ctx) error {
	return c.Render("admin/raporlar", fiber.Map{
		"Title": "Raporlar - Veli Portalı",
		"Flash": flash.Get(c),
	})
}

type EtkinlikEkleRequest struct {
	Baslik          string  `json:"baslik" validate:"required"`
	Aciklama        string  `json:"aciklama"`
	BaslangicTarihi string  `json:"baslangic_tarihi" validate:"required"`
	BitisTarihi     string  `json:"bitis_tarihi" validate:"required"`
	Konum           string  `json:"konum"`
	Kapasite        int     `json:"kapasite"`
	Ucret           float64 `json:"ucret"`
}

// EtkinlikEkleAPI creates a new event. Unlike the listing pages this is
// a JSON endpoint, answering with the success/message contract.
func EtkinlikEkleAPI(c *fiber.Ctx) error {
	var req EtkinlikEkleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz istek!"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Lütfen tüm zorunlu alanları doldurun."})
	}

	baslangic, err := time.Parse(dateTimeLayout, req.BaslangicTarihi)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz başlangıç tarihi!"})
	}
	bitis, err := time.Parse(dateTimeLayout, req.BitisTarihi)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz bitiş tarihi!"})
	}
	if bitis.Before(baslangic) {
		return c.JSON(fiber.Map{"success": false, "message": "Bitiş tarihi başlangıçtan önce olamaz!"})
	}
	if req.Ucret < 0 {
		return c.JSON(fiber.Map{"success": false, "message": "Ücret negatif olamaz!"})
	}

	etkinlik := &models.Etkinlik{
		Baslik:          req.Baslik,
		Aciklama:        req.Aciklama,
		BaslangicTarihi: baslangic,
		BitisTarihi:     bitis,
		Konum:           req.Konum,
		Kapasite:        req.Kapasite,
		Ucret:           req.Ucret,
		Durum:           models.EtkinlikPlanlaniyor,
	}
	if err := database.CreateEtkinlik(config.GetDB(), etkinlik); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Etkinlik eklenemedi!"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Etkinlik başarıyla eklendi!", "etkinlik": etkinlik})
}

// OdemeEkleAPI records a payment against a student. Payments are
// manually tracked; no gateway is involved.
func OdemeEkleAPI(c *fiber.Ctx) error {
	ogrenciID, err := strconv.ParseUint(c.FormValue("ogrenci_id"), 10, 32)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz öğrenci!"})
	}
	miktar, err := strconv.ParseFloat(c.FormValue("miktar"), 64)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Geçersiz tutar!"})
	}

	db := config.GetDB()
	if _, err := database.GetOgrenciByID(db, uint(ogrenciID)); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Öğrenci bulunamadı!"})
	}

	odeme := &models.Odeme{
		OgrenciID: uint(ogrenciID),
		Miktar:    miktar,
		Aciklama:  c.FormValue("aciklama"),
		Durum:     models.OdemeBekliyor,
	}
	if tarih := c.FormValue("odeme_tarihi"); tarih != "" {
		parsed, err := time.Parse("2006-01-02", tarih)
		if err != nil {
			return c.JSON(fiber.Map{"success": false, "message": "Geçersiz ödeme tarihi!"})
		}
		odeme.OdemeTarihi = &parsed
	}

	if err := database.CreateOdeme(db, odeme); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Ödeme eklenemedi!"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Ödeme başarıyla eklendi!", "odeme": odeme})
}
