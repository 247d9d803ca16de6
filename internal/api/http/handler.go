package http

import (
	"futuresbot/internal/usecasees/structs"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const rootMessage = "Binance Futures Order Bot API"

type Handler struct {
	orders OrderUseCase
	logger *logrus.Logger
}

func NewHandler(orders OrderUseCase, l *logrus.Logger) *Handler {
	return &Handler{
		orders: orders,
		logger: l,
	}
}

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": rootMessage})
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) PlaceMarket(c *fiber.Ctx) error {
	var req structs.MarketOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceMarket(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) PlaceLimit(c *fiber.Ctx) error {
	var req structs.LimitOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceLimit(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) PlaceStopLimit(c *fiber.Ctx) error {
	var req structs.StopLimitOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceStopLimit(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) PlaceOCO(c *fiber.Ctx) error {
	var req structs.OCOOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceOCO(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) PlaceTWAP(c *fiber.Ctx) error {
	var req structs.TWAPOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceTWAP(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) PlaceGrid(c *fiber.Ctx) error {
	var req structs.GridOrderRequest
	if err := structs.Decode(c.Body(), &req); err != nil {
		return err
	}

	resp, err := h.orders.PlaceGrid(c.UserContext(), owner(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	resp, err := h.orders.List(c.UserContext(), owner(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
