package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	pages := app.Group("/admin", auth.AuthMiddleware, auth.RequireRol(models.RolAdmin))
	pages.Get("/", DashboardPage)
	pages.Get("/ogrenciler", OgrencilerPage)
	pages.Get("/veliler", VelilerPage)
	pages.Get("/etkinlikler", EtkinliklerPage)
	pages.Get("/raporlar", RaporlarPage)

	app.Post("/api/etkinlik_ekle", auth.AuthMiddleware, auth.RequireRol(models.RolAdmin), EtkinlikEkleAPI)
	app.Post("/api/odeme_ekle", auth.AuthMiddleware, auth.RequireRol(models.RolAdmin), OdemeEkleAPI)
}
