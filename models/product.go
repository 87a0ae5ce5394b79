package models

// Product is a catalog entry. The catalog is a fixed demo seed; there is no
// server-side product CRUD and no stock tracking.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Category      string  `json:"category"`
}

var demoCatalog = []Product{
	{
		ID:            "1",
		Name:          "Беспроводные наушники Sony WH-1000XM4",
		Price:         24990,
		OriginalPrice: 29990,
		Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.8,
		Reviews:       1234,
		Category:      "Электроника",
	},
	{
		ID:            "2",
		Name:          "Смартфон iPhone 15 Pro 128GB",
		Price:         89990,
		OriginalPrice: 94990,
		Image:         "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.9,
		Reviews:       2156,
		Category:      "Смартфоны",
	},
	{
		ID:       "3",
		Name:     "Ноутбук MacBook Air M2 13\" 256GB",
		Price:    119990,
		Image:    "https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.7,
		Reviews:  892,
		Category: "Компьютеры",
	},
	{
		ID:            "4",
		Name:          "Умные часы Apple Watch Series 9",
		Price:         39990,
		OriginalPrice: 44990,
		Image:         "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.6,
		Reviews:       567,
		Category:      "Носимые устройства",
	},
	{
		ID:       "5",
		Name:     "Планшет iPad Pro 11\" 128GB",
		Price:    69990,
		Image:    "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.8,
		Reviews:  1098,
		Category: "Планшеты",
	},
	{
		ID:            "6",
		Name:          "Игровая консоль PlayStation 5",
		Price:         49990,
		OriginalPrice: 54990,
		Image:         "https://images.pexels.com/photos/4009402/pexels-photo-4009402.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.9,
		Reviews:       3245,
		Category:      "Игры",
	},
}

// Catalog returns a copy of the demo catalog.
func Catalog() []Product {
	out := make([]Product, len(demoCatalog))
	copy(out, demoCatalog)
	return out
}

// FindProduct looks a catalog entry up by id.
func FindProduct(id string) (Product, bool) {
	for _, p := range demoCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
