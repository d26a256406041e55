package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"xiangqi/internal/server/game"
)

type Options struct {
	WebDir      string // 前端静态文件目录，空则不挂
	AllowOrigin string // 前端单独起 dev server 时填它的 origin
	LogRequests bool
}

// NewApp 组装 fiber 应用：/api/* 对局接口 + 静态页面
func NewApp(games *game.Manager, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "xiangqi-local",
		DisableStartupMessage: true,
	})

	if opts.LogRequests {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	if opts.AllowOrigin != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigin,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, OPTIONS",
		}))
	}

	NewHandler(games).Register(app.Group("/api"))
	RegisterStaticRoutes(app, opts.WebDir)
	return app
}
