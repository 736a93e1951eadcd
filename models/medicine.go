package models

import "time"

type Medicine struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Image        string    `json:"image"`
	Prescription bool      `json:"prescription"`
	Dosage       string    `json:"dosage,omitempty"`
	SideEffects  string    `json:"side_effects,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Categories is the closed set of medicine categories.
var Categories = []string{
	"Pain Relief",
	"Antibiotics",
	"Vitamins & Supplements",
	"Cold & Flu",
	"Digestive Health",
	"Heart Health",
	"Diabetes Care",
	"First Aid",
	"Skin Care",
	"Others",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
