package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kinfelix50-dotcom/veli-portali/app/models"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/flash"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/giris", ShowLoginPage)
	app.Post("/giris", LoginAPI)
	app.Get("/kayit", ShowRegisterPage)
	app.Post("/kayit", RegisterAPI)
	app.Get("/cikis", AuthMiddleware, LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in: go straight to the role's dashboard.
	if claims := sessionClaims(c); claims != nil {
		return c.Redirect(homeFor(claims.Rol))
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Giriş - Veli Portalı",
		"Flash": flash.Get(c),
	})
}

func ShowRegisterPage(c *fiber.Ctx) error {
	if claims := sessionClaims(c); claims != nil {
		return c.Redirect("/")
	}

	return c.Render("auth/register", fiber.Map{
		"Title": "Kayıt - Veli Portalı",
		"Flash": flash.Get(c),
	})
}

// AuthMiddleware validates the session token and sets the principal for
// downstream handlers. Checked on every request; nothing is cached.
func AuthMiddleware(c *fiber.Ctx) error {
	claims := sessionClaims(c)
	if claims == nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Oturum bulunamadı!",
			})
		}
		flash.Set(c, "info", "Bu sayfaya erişmek için giriş yapmalısınız.")
		return c.Redirect("/giris")
	}

	// The principal is rebuilt from the token alone; deactivating an
	// account takes effect at the next login, not mid-session.
	user := &models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Rol:      claims.Rol,
		IsActive: true,
	}
	c.Locals("user", user)

	return c.Next()
}

// RequireRol denies access when the principal's role does not match.
// API requests get the JSON contract, pages get a flash and a redirect
// to the landing page.
func RequireRol(rol models.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user != nil && user.Rol == rol {
			return c.Next()
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.JSON(fiber.Map{"success": false, "message": "Yetkisiz işlem!"})
		}
		flash.Set(c, "error", "Bu sayfaya erişim yetkiniz yok!")
		return c.Redirect("/")
	}
}

// CurrentUser returns the principal set by AuthMiddleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// sessionClaims extracts a valid session from the cookie or, for API
// clients, a bearer header. Returns nil when there is none.
func sessionClaims(c *fiber.Ctx) *SessionClaims {
	tokenString := c.Cookies(sessionCookieName)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return nil
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

func homeFor(rol models.Rol) string {
	if rol == models.RolAdmin {
		return "/admin"
	}
	return "/veli"
}
