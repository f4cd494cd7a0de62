package pages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/routes/flash"
)

func SetupPageRoutes(app *fiber.App) {
	app.Get("/", IndexPage)
	app.Get("/hakkimizda", HakkimizdaPage)
	app.Get("/iletisim", IletisimPage)
}

func IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Akıl ve Zeka Oyunları Kulübü",
		"Flash": flash.Get(c),
	})
}

func HakkimizdaPage(c *fiber.Ctx) error {
	return c.Render("hakkimizda", fiber.Map{
		"Title": "Hakkımızda - Veli Portalı",
		"Flash": flash.Get(c),
	})
}

func IletisimPage(c *fiber.Ctx) error {
	return c.Render("iletisim", fiber.Map{
		"Title": "İletişim - Veli Portalı",
		"Flash": flash.Get(c),
	})
}
