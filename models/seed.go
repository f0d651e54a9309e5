package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// The storefront sells a fixed demo catalog. Seeding runs once at boot and
// is a no-op when the tables already hold data, so restarts don't duplicate
// rows and admin edits survive.

var seedCategories = []Category{
	{Name: "Technology", Slug: "technology", Image: "/images/categories/technology.jpg"},
	{Name: "Apparel", Slug: "apparel", Image: "/images/categories/apparel.jpg"},
	{Name: "Home", Slug: "home", Image: "/images/categories/home.jpg"},
}

type seedProduct struct {
	Name        string
	Slug        string
	Description string
	Price       float64
	Image       string
	Gallery     string
	Category    string // category slug
	Stock       int
	Popularity  int
}

var seedProducts = []seedProduct{
	{
		Name:        "Aurora 27\" 4K Monitor",
		Slug:        "aurora-27-4k-monitor",
		Description: "27-inch IPS panel, 144Hz refresh, HDR600. The centerpiece of any desk setup.",
		Price:       499.99, Image: "/images/products/aurora-monitor.jpg",
		Gallery:  "/images/products/aurora-monitor-side.jpg|/images/products/aurora-monitor-back.jpg",
		Category: "technology", Stock: 12, Popularity: 95,
	},
	{
		Name:        "Drift Mechanical Keyboard",
		Slug:        "drift-mechanical-keyboard",
		Description: "Hot-swappable switches, PBT keycaps, south-facing RGB. Thocky out of the box.",
		Price:       149.99, Image: "/images/products/drift-keyboard.jpg",
		Category:    "technology", Stock: 30, Popularity: 88,
	},
	{
		Name:        "Pulse Wireless Earbuds",
		Slug:        "pulse-wireless-earbuds",
		Description: "Active noise cancelling, 8-hour charge, wireless case.",
		Price:       129.99, Image: "/images/products/pulse-earbuds.jpg",
		Category:    "technology", Stock: 45, Popularity: 91,
	},
	{
		Name:        "Nimbus Smart Speaker",
		Slug:        "nimbus-smart-speaker",
		Description: "Room-filling 360° sound with a fabric finish that blends in anywhere.",
		Price:       89.99, Image: "/images/products/nimbus-speaker.jpg",
		Category:    "technology", Stock: 20, Popularity: 64,
	},
	{
		Name:        "Trackpad Pro",
		Slug:        "trackpad-pro",
		Description: "Glass multi-touch surface with haptic click. Batteries last a month.",
		Price:       119.99, Image: "/images/products/trackpad-pro.jpg",
		Category:    "technology", Stock: 0, Popularity: 47,
	},
	{
		Name:        "Summit Flannel Shirt",
		Slug:        "summit-flannel-shirt",
		Description: "Heavyweight brushed flannel. Runs true to size.",
		Price:       59.99, Image: "/images/products/summit-flannel.jpg",
		Category:    "apparel", Stock: 60, Popularity: 72,
	},
	{
		Name:        "Ridge Canvas Jacket",
		Slug:        "ridge-canvas-jacket",
		Description: "Waxed canvas shell with a quilted liner, built for shoulder seasons.",
		Price:       139.99, Image: "/images/products/ridge-jacket.jpg",
		Category:    "apparel", Stock: 25, Popularity: 81,
	},
	{
		Name:        "Everyday Crew Tee",
		Slug:        "everyday-crew-tee",
		Description: "Midweight combed cotton in eight colors. The one you reach for first.",
		Price:       24.99, Image: "/images/products/everyday-tee.jpg",
		Category:    "apparel", Stock: 120, Popularity: 85,
	},
	{
		Name:        "Lowland Beanie",
		Slug:        "lowland-beanie",
		Description: "Merino blend, fisherman rib. One size.",
		Price:       29.99, Image: "/images/products/lowland-beanie.jpg",
		Category:    "apparel", Stock: 80, Popularity: 40,
	},
	{
		Name:        "Traverse Running Shoes",
		Slug:        "traverse-running-shoes",
		Description: "Responsive foam midsole with a breathable knit upper.",
		Price:       119.99, Image: "/images/products/traverse-shoes.jpg",
		Gallery:  "/images/products/traverse-shoes-sole.jpg",
		Category: "apparel", Stock: 35, Popularity: 78,
	},
	{
		Name:        "Hearth Pour-Over Set",
		Slug:        "hearth-pour-over-set",
		Description: "Borosilicate dripper, glass carafe, and a walnut collar. Makes four cups.",
		Price:       64.99, Image: "/images/products/hearth-pourover.jpg",
		Category:    "home", Stock: 40, Popularity: 69,
	},
	{
		Name:        "Ember Cast Iron Skillet",
		Slug:        "ember-cast-iron-skillet",
		Description: "12-inch, pre-seasoned, machined-smooth cooking surface.",
		Price:       49.99, Image: "/images/products/ember-skillet.jpg",
		Category:    "home", Stock: 50, Popularity: 75,
	},
	{
		Name:        "Drift Linen Throw",
		Slug:        "drift-linen-throw",
		Description: "Stonewashed linen, oversized at 60 by 80 inches.",
		Price:       79.99, Image: "/images/products/drift-throw.jpg",
		Category:    "home", Stock: 28, Popularity: 52,
	},
	{
		Name:        "Meridian Desk Lamp",
		Slug:        "meridian-desk-lamp",
		Description: "Full-spectrum LED with a stepless dimmer and USB-C charging port.",
		Price:       74.99, Image: "/images/products/meridian-lamp.jpg",
		Category:    "home", Stock: 33, Popularity: 58,
	},
	{
		Name:        "Alcove Ceramic Planter",
		Slug:        "alcove-ceramic-planter",
		Description: "Matte-glazed stoneware with a drainage tray. Fits up to 8-inch pots.",
		Price:       39.99, Image: "/images/products/alcove-planter.jpg",
		Category:    "home", Stock: 65, Popularity: 36,
	},
}

// SeedCatalog populates the fixed category set and demo products. Safe to
// call on every boot.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&seedCategories).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d categories", len(seedCategories))
	}

	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := map[string]uint{}
	var cats []Category
	if err := db.Find(&cats).Error; err != nil {
		return err
	}
	for _, c := range cats {
		categories[c.Slug] = c.ID
	}

	now := time.Now()
	products := make([]Product, 0, len(seedProducts))
	for i, sp := range seedProducts {
		products = append(products, Product{
			Name:          sp.Name,
			Slug:          sp.Slug,
			Description:   sp.Description,
			Price:         sp.Price,
			Image:         sp.Image,
			GalleryImages: sp.Gallery,
			CategoryID:    categories[sp.Category],
			InStock:       sp.Stock > 0,
			Stock:         sp.Stock,
			Popularity:    sp.Popularity,
			// Stagger creation times so the "newest" sort has an order to show.
			CreatedAt: now.Add(-time.Duration(len(seedProducts)-i) * 24 * time.Hour),
		})
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d products", len(products))
	return nil
}
