package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/config"
	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/flash"
)

var validate = validator.New()

func LoginAPI(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := database.GetUserByEmail(config.GetDB(), email)
	if err != nil || !CheckPasswordHash(password, user.PasswordHash) || !user.IsActive {
		flash.Set(c, "error", "E-posta veya şifre hatalı!")
		return c.Redirect("/giris", fiber.StatusSeeOther)
	}

	token, err := GenerateSessionToken(user)
	if err != nil {
		flash.Set(c, "error", "Giriş yapılamadı, lütfen tekrar deneyin.")
		return c.Redirect("/giris", fiber.StatusSeeOther)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(sessionLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	flash.Set(c, "success", "Başarıyla giriş yaptınız!")
	return c.Redirect(homeFor(user.Rol), fiber.StatusSeeOther)
}

type RegisterForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Ad       string `validate:"required"`
	Soyad    string `validate:"required"`
}

func RegisterAPI(c *fiber.Ctx) error {
	form := RegisterForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Ad:       c.FormValue("ad"),
		Soyad:    c.FormValue("soyad"),
	}
	if err := validate.Struct(form); err != nil {
		flash.Set(c, "error", "Lütfen tüm zorunlu alanları doldurun.")
		return c.Redirect("/kayit", fiber.StatusSeeOther)
	}

	hash, err := HashPassword(form.Password)
	if err != nil {
		flash.Set(c, "error", "Kayıt yapılamadı, lütfen tekrar deneyin.")
		return c.Redirect("/kayit", fiber.StatusSeeOther)
	}

	user := &models.User{
		Email:        form.Email,
		PasswordHash: hash,
		Rol:          models.RolVeli,
		IsActive:     true,
	}
	veli := &models.Veli{
		Ad:      form.Ad,
		Soyad:   form.Soyad,
		Telefon: c.FormValue("telefon"),
		Adres:   c.FormValue("adres"),
	}

	if err := database.CreateUserWithVeli(config.GetDB(), user, veli); err != nil {
		if err == database.ErrEmailTaken {
			flash.Set(c, "error", "Bu e-posta adresi zaten kullanılıyor!")
		} else {
			flash.Set(c, "error", "Kayıt yapılamadı, lütfen tekrar deneyin.")
		}
		return c.Redirect("/kayit", fiber.StatusSeeOther)
	}

	flash.Set(c, "success", "Kayıt başarılı! Giriş yapabilirsiniz.")
	return c.Redirect("/giris", fiber.StatusSeeOther)
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	flash.Set(c, "info", "Başarıyla çıkış yaptınız.")
	return c.Redirect("/")
}
