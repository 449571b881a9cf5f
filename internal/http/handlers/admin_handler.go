package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gpstore/internal/domain"
	applog "gpstore/internal/log"
	"gpstore/internal/store"
	"gpstore/internal/validate"
)

type AdminHandler struct {
	Store *store.Store
}

type orderStatusReq struct {
	Status string `json:"status"`
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.Store.Stats(5))
}

func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	return c.JSON(h.Store.Orders())
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var req orderStatusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	if !domain.ValidOrderStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status"})
	}
	if !h.Store.UpdateOrderStatus(id, req.Status) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order": id, "status": req.Status})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	if p.Name == "" || p.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and a positive price are required"})
	}
	if !domain.ValidCategory(p.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	h.Store.AddProduct(p)
	applog.Audit(c, "admin.product.create", map[string]any{"product": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var patch store.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
	}

	// Absent ids are a silent no-op in the store; report the outcome here so
	// the admin UI can tell.
	_, exists := h.Store.Product(id)
	h.Store.UpdateProduct(id, patch)
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, _ := h.Store.Product(id)
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(p)
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.Store.DeleteProduct(id)
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"ok": true})
}
