package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gpstore/internal/store"
	"gpstore/internal/validate"
)

type CartHandler struct {
	Store *store.Store
}

type addToCartReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQtyReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.Store.Cart(),
		"total": h.Store.CartTotal(),
		"count": h.Store.CartItemsCount(),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addToCartReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, ok := h.Store.Product(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	h.Store.AddToCart(p, validate.Qty(req.Quantity))
	return h.View(c)
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req updateQtyReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	// Zero and below remove the line, same as an explicit delete.
	h.Store.UpdateQuantity(id, req.Quantity)
	return h.View(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.Store.RemoveFromCart(id)
	return h.View(c)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Store.ClearCart()
	return h.View(c)
}
