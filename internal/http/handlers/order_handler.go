package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gpstore/internal/domain"
	applog "gpstore/internal/log"
	"gpstore/internal/store"
	"gpstore/internal/validate"
)

type OrderHandler struct {
	Store *store.Store
}

type shippingReq struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type stepReq struct {
	Step int `json:"step"`
}

// Checkout reports the current step and staged address so a client can
// resume where it left off.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"step":            h.Store.CheckoutStep(),
		"shippingAddress": h.Store.ShippingAddress(),
	})
}

// SetAddress stages the shipping address and advances to the payment step,
// the same transition the shipping form performs on successful validation.
func (h *OrderHandler) SetAddress(c *fiber.Ctx) error {
	var req shippingReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	if req.Street == "" || req.City == "" || req.State == "" || req.Country == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "all address fields are required"})
	}
	zip, ok := validate.Zip(req.ZipCode)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid zip code"})
	}

	h.Store.SetShippingAddress(domain.ShippingAddress{
		Name:    name,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: zip,
		Country: req.Country,
	})
	h.Store.SetCheckoutStep(2)
	return h.Checkout(c)
}

// SetStep handles the explicit "back" transition from payment to shipping.
// Entering the payment step requires a staged address.
func (h *OrderHandler) SetStep(c *fiber.Ctx) error {
	var req stepReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	switch req.Step {
	case 1:
	case 2:
		if h.Store.ShippingAddress() == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "shipping address required first"})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown checkout step"})
	}
	h.Store.SetCheckoutStep(req.Step)
	return h.Checkout(c)
}

// Place runs the order transaction. A nil result means a precondition failed
// and nothing changed; the client gets one generic message.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	order := h.Store.PlaceOrder()
	if order == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot place order: sign in, add items and provide a shipping address",
		})
	}
	applog.Audit(c, "order.placed", map[string]any{"order": order.ID, "total": order.Total})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// History lists the logged-in user's orders, newest first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u := h.Store.User()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	return c.JSON(h.Store.OrdersByUser(u.ID))
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	u := h.Store.User()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	id := c.Params("id")
	o, ok := h.Store.Order(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	// Order detail is owner-or-admin only; leak nothing about foreign orders.
	if o.UserID != u.ID && u.Role != domain.RoleAdmin {
		applog.Security(c, "authz.order.deny", map[string]any{"user": u.ID, "order": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(o)
}
