package httpserver

import "github.com/gofiber/fiber/v2"

// RegisterStaticRoutes mounts:
// - /web/* -> board page assets
// - /      -> redirect to /web/
func RegisterStaticRoutes(app *fiber.App, webDir string) {
	if app == nil || webDir == "" {
		return
	}

	app.Static("/web", webDir, fiber.Static{
		Index:  "index.html",
		Browse: false,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/web/", fiber.StatusFound)
	})
}
