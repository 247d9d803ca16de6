package main

import (
	"time"

	api "futuresbot/internal/api/http"

	"github.com/gofiber/fiber/v2"
)

func (a *App) initHTTP() {
	a.Fiber = fiber.New(fiber.Config{
		AppName:               a.Config.Name,
		ErrorHandler:          api.ErrorHandler(a.Logger),
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		DisableStartupMessage: true,
	})

	a.Middleware = api.NewMiddleware(a.Fiber, a.Config.Name, a.Config.JWTSecret, a.Logger)
	a.Middleware.Register()
}
