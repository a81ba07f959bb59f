package main

import (
	"log"

	"lycia-backend/internal/config"
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

type seedProduct struct {
	ID          uint
	Title       string
	Description string
	Price       string
	Tag         string
	Category    string
	Stock       int
	Images      []string
}

var seedProducts = []seedProduct{
	{
		ID:          1,
		Title:       "Defne Sabunu",
		Description: "Geleneksel yöntemle üretilmiş saf defne yağlı sabun.",
		Price:       "189.90",
		Tag:         "El yapımı",
		Category:    "sabun",
		Stock:       120,
		Images:      []string{"/images/defne-sabunu-1.jpg", "/images/defne-sabunu-2.jpg"},
	},
	{
		ID:          2,
		Title:       "Lavanta Yağı 50ml",
		Description: "Soğuk pres lavanta yağı, cilt ve masaj için.",
		Price:       "349.00",
		Tag:         "Soğuk pres",
		Category:    "yag",
		Stock:       60,
		Images:      []string{"/images/lavanta-yagi.jpg"},
	},
	{
		ID:          3,
		Title:       "Zeytinyağlı Bakım Kremi",
		Description: "Kuru ciltler için zeytinyağı bazlı yoğun nemlendirici.",
		Price:       "429.50",
		Tag:         "Yeni",
		Category:    "krem",
		Stock:       45,
		Images:      []string{"/images/zeytinyagli-krem.jpg"},
	},
	{
		ID:          4,
		Title:       "Keçi Sütü Sabunu",
		Description: "Hassas ciltler için keçi sütü içerikli sabun.",
		Price:       "219.00",
		Tag:         "",
		Category:    "sabun",
		Stock:       80,
		Images:      []string{"/images/keci-sutu-sabunu.jpg"},
	},
	{
		ID:          5,
		Title:       "Bakım Seti (3'lü)",
		Description: "Sabun, yağ ve krem içeren hediye seti.",
		Price:       "899.00",
		Tag:         "Set",
		Category:    "set",
		Stock:       25,
		Images:      []string{"/images/bakim-seti-1.jpg", "/images/bakim-seti-2.jpg"},
	},
}

func main() {
	cfg := config.Load()
	database.Init(cfg)

	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			log.Fatalf("Geçersiz seed fiyatı (%s): %v", sp.Title, err)
		}

		p := models.Product{
			ID:          sp.ID,
			Title:       sp.Title,
			Description: sp.Description,
			Price:       price,
			Tag:         sp.Tag,
			Category:    sp.Category,
			Stock:       sp.Stock,
			Active:      true,
		}
		p.SetImageList(sp.Images)

		err = database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&p).Error
		if err != nil {
			log.Fatalf("Seed hatası (%s): %v", sp.Title, err)
		}
	}

	log.Printf("Seed tamamlandı: %d ürün", len(seedProducts))
}
