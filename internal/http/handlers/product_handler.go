package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gpstore/internal/domain"
	"gpstore/internal/store"
	"gpstore/internal/validate"
)

type ProductHandler struct {
	Store *store.Store
}

// List mirrors the products page: query params stage the store's search,
// category and sort state, then the filtered listing is returned.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	h.Store.SetSearchQuery(c.Query("q"))
	if cat := c.Query("category"); cat != "" {
		if !domain.ValidCategory(cat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
		}
		h.Store.SetSelectedCategory(cat)
	} else {
		h.Store.SetSelectedCategory("")
	}
	switch sortBy := c.Query("sort"); sortBy {
	case "":
	case store.SortByName, store.SortByPrice, store.SortByRating, store.SortByNewest:
		h.Store.SetSortBy(sortBy)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown sort key"})
	}

	products := h.Store.FilteredProducts()
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
		"total":    len(h.Store.Products()),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, ok := h.Store.Product(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "This item is no longer available"})
	}
	return c.JSON(p)
}
