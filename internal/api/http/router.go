package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, m *Middleware, orders OrderUseCase, l *logrus.Logger) {
	h := NewHandler(orders, l)

	f.Get("/", h.Root)

	api := f.Group("api")
	api.Get("/healthcheck", h.HealthCheck)

	o := f.Group("orders", m.Auth())
	o.Post("/market", h.PlaceMarket)
	o.Post("/limit", h.PlaceLimit)
	o.Get("/", h.ListOrders)

	adv := f.Group("advanced", m.Auth())
	adv.Post("/stop-limit", h.PlaceStopLimit)
	adv.Post("/oco", h.PlaceOCO)
	adv.Post("/twap", h.PlaceTWAP)
	adv.Post("/grid", h.PlaceGrid)
}
