package veli

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/auth"
)

func SetupVeliRoutes(app *fiber.App) {
	pages := app.Group("/veli", auth.AuthMiddleware, auth.RequireRol(models.RolVeli))
	pages.Get("/", DashboardPage)
	pages.Get("/cocuklarim", CocuklarimPage)
	pages.Get("/etkinlikler", EtkinliklerPage)
	pages.Get("/odemeler", OdemelerPage)

	app.Post("/api/ogrenci_ekle", auth.AuthMiddleware, auth.RequireRol(models.RolVeli), OgrenciEkleAPI)
	app.Post("/api/etkinlik_kayit", auth.AuthMiddleware, auth.RequireRol(models.RolVeli), EtkinlikKayitAPI)
}
