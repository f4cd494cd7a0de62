package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/config"
	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/admin"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/auth"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/pages"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/veli"
)

// customErrorHandler answers API requests with the JSON contract and
// everything else with the error pages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("errors/404", fiber.Map{
			"Title": "Sayfa Bulunamadı - Veli Portalı",
		})
	}
	return c.Status(code).Render("errors/500", fiber.Map{
		"Title": "Sunucu Hatası - Veli Portalı",
	})
}

func main() {
	config.Load()
	config.InitDB()

	db := config.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		BodyLimit:         config.AppConfig.Upload.MaxContentLength,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	pages.SetupPageRoutes(app)
	auth.SetupAuthRoutes(app)
	admin.SetupAdminRoutes(app)
	veli.SetupVeliRoutes(app)

	// Unmatched routes fall through to the 404 page.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	log.Println("Server started on port", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
