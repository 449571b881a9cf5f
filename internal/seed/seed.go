// Package seed supplies the demo catalog, order history and the canonical
// administrator record. The generators run once at startup and only when the
// restored catalog is empty, so persisted data is never overwritten.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"gpstore/internal/domain"
)

// AdminEmail is the canonical administrator login. The store's repair rule
// guarantees a registry entry with AdminID carrying this email survives every
// restore.
const (
	AdminID    = "1"
	AdminEmail = "example@admin.com"
)

// Admin returns the canonical administrator record. Plaintext credential,
// demo data only.
func Admin() domain.User {
	return domain.User{
		ID:       AdminID,
		Name:     "Admin User",
		Email:    AdminEmail,
		Password: "admin123",
		Role:     domain.RoleAdmin,
		Avatar:   "https://i.pravatar.cc/100?u=" + AdminEmail,
	}
}

var brands = []string{"TechPro", "InnoTech", "SmartHome", "GPSMaster", "AutoCore", "HomeGenius"}

var gpsDeviceImage = "https://images.gpstore.test/catalog/gps-navigator.png"
var gpsTrackerImage = "https://images.gpstore.test/catalog/gps-tracker.png"
var homeAutomationImage = "https://images.gpstore.test/catalog/smart-hub.png"

// Products generates the demo catalog: fifteen GPS devices, twelve trackers
// and eighteen home-automation hubs with randomized pricing, ratings and
// stock flags in the same ranges the storefront advertises.
func Products() []domain.Product {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var products []domain.Product

	adjectives := []string{"Elite", "Compact", "Rugged", "Sleek", "Precision", "Voyager"}
	materials := []string{"Titanium", "Carbon", "Alloy", "Graphite", "Steel", "Polymer"}
	hubNames := []string{"Controller", "Gateway", "Bridge", "Panel", "Station", "Core"}

	for i := 0; i < 15; i++ {
		p := baseProduct(r, domain.CategoryGPSDevices, gpsDeviceImage)
		p.Name = "GPS Navigator Pro " + pick(r, adjectives)
		p.Description = "Professional GPS navigation device with advanced mapping capabilities, real-time traffic updates, and weather information. Perfect for automotive, marine, and outdoor applications."
		p.Price = price(r, 150, 800)
		p.OriginalPrice = price(r, 200, 900)
		p.Specifications = map[string]string{
			"Screen Size":    fmt.Sprintf("%d\"", 5+r.Intn(6)),
			"Battery Life":   fmt.Sprintf("%d hours", 8+r.Intn(17)),
			"Map Updates":    "Lifetime",
			"Voice Commands": "Yes",
			"Bluetooth":      "Yes",
			"Memory":         fmt.Sprintf("%dGB", 16+r.Intn(49)),
		}
		p.Reviews = 10 + r.Intn(491)
		p.Tags = []string{"GPS", "Navigation", "Automotive", "Travel"}
		products = append(products, p)
	}

	for i := 0; i < 12; i++ {
		p := baseProduct(r, domain.CategoryGPSTrackers, gpsTrackerImage)
		p.Name = "Stealth GPS Tracker " + pick(r, materials)
		p.Description = "Compact and reliable GPS tracking device with real-time location monitoring, geofencing alerts, and long battery life. Ideal for vehicles, pets, and personal belongings."
		p.Price = price(r, 50, 300)
		p.OriginalPrice = price(r, 80, 350)
		waterproof := "No"
		if r.Intn(2) == 0 {
			waterproof = "Yes"
		}
		p.Specifications = map[string]string{
			"Size":         fmt.Sprintf("%d x %d inches", 2+r.Intn(4), 2+r.Intn(4)),
			"Battery Life": fmt.Sprintf("%d days", 7+r.Intn(24)),
			"GPS Accuracy": "3-5 meters",
			"Connectivity": "4G LTE",
			"Waterproof":   waterproof,
			"Geofencing":   "Yes",
		}
		p.Reviews = 15 + r.Intn(286)
		p.Tags = []string{"GPS", "Tracking", "Security", "Monitoring"}
		products = append(products, p)
	}

	for i := 0; i < 18; i++ {
		p := baseProduct(r, domain.CategoryHomeAutomation, homeAutomationImage)
		p.Name = "Smart Home Hub " + pick(r, hubNames)
		p.Description = "Advanced home automation system with voice control, mobile app integration, and energy monitoring. Transform your home into a smart, efficient, and secure living space."
		p.Price = price(r, 100, 600)
		p.OriginalPrice = price(r, 150, 700)
		p.Specifications = map[string]string{
			"Connectivity":         "WiFi, Bluetooth, Zigbee",
			"Voice Control":        "Alexa, Google Assistant",
			"Mobile App":           "iOS, Android",
			"Energy Monitoring":    "Yes",
			"Smart Scheduling":     "Yes",
			"Security Integration": "Yes",
		}
		p.Reviews = 20 + r.Intn(381)
		p.Tags = []string{"Smart Home", "Automation", "IoT", "Security"}
		products = append(products, p)
	}

	return products
}

func baseProduct(r *rand.Rand, category, image string) domain.Product {
	created := time.Now().Add(-time.Duration(r.Intn(30*24)) * time.Hour)
	return domain.Product{
		ID:        uuid.NewString(),
		Category:  category,
		Image:     image,
		Images:    []string{image},
		InStock:   r.Intn(2) == 0,
		Rating:    float64(35+r.Intn(16)) / 10,
		Brand:     pick(r, brands),
		Featured:  r.Intn(2) == 0,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Orders generates twenty historical demo orders with empty item lists and
// randomized totals, statuses and addresses.
func Orders() []domain.Order {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []string{
		domain.OrderPending, domain.OrderProcessing, domain.OrderShipped,
		domain.OrderDelivered, domain.OrderCancelled,
	}
	cities := []string{"Austin", "Denver", "Portland", "Madison", "Raleigh", "Tucson"}
	states := []string{"TX", "CO", "OR", "WI", "NC", "AZ"}
	streets := []string{"Maple Ave", "Oak St", "Cedar Ln", "Birch Rd", "Elm Dr", "Pine Ct"}

	var orders []domain.Order
	for i := 0; i < 20; i++ {
		loc := r.Intn(len(cities))
		orders = append(orders, domain.Order{
			ID:        uuid.NewString(),
			UserID:    uuid.NewString(),
			Items:     []domain.CartItem{},
			Total:     price(r, 100, 2000),
			Status:    pick(r, statuses),
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(14*24)) * time.Hour),
			ShippingAddress: domain.ShippingAddress{
				Street:  fmt.Sprintf("%d %s", 100+r.Intn(9900), pick(r, streets)),
				City:    cities[loc],
				State:   states[loc],
				ZipCode: fmt.Sprintf("%05d", 10000+r.Intn(89999)),
				Country: "USA",
			},
		})
	}
	return orders
}

func pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

func price(r *rand.Rand, lo, hi int) float64 {
	cents := r.Intn((hi-lo)*100 + 1)
	return float64(lo) + float64(cents)/100
}
