package domain

import "time"

// Product categories carried by the storefront.
const (
	CategoryGPSDevices     = "gps-devices"
	CategoryGPSTrackers    = "gps-trackers"
	CategoryHomeAutomation = "home-automation"
	CategoryAccessories    = "accessories"
)

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGPSDevices, CategoryGPSTrackers, CategoryHomeAutomation, CategoryAccessories:
		return true
	}
	return false
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	// OriginalPrice is the pre-discount price when set (> 0). No ordering
	// relative to Price is enforced; a value below Price yields a negative
	// discount percentage on display.
	OriginalPrice  float64           `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"inStock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Brand          string            `json:"brand"`
	Tags           []string          `json:"tags"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Clone returns a copy of p with its own slices and specification map, so the
// copy cannot be reached through later mutations of the receiver.
func (p Product) Clone() Product {
	c := p
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Specifications != nil {
		c.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			c.Specifications[k] = v
		}
	}
	return c
}

// CartItem is one cart line. ID always equals Product.ID; a cart never holds
// two lines for the same product.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) Clone() CartItem {
	c := i
	c.Product = i.Product.Clone()
	return c
}

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order is a placed order. Items and ShippingAddress are snapshots owned by
// the order; mutating the cart afterwards never changes them.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// StoreStats summarizes the registries for the admin dashboard.
type StoreStats struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCustomers int     `json:"totalCustomers"`
	RecentOrders   []Order `json:"recentOrders"`
}
