package catalog

import "github.com/osse101/BuyerMerchant_Go/internal/domain"

// DefaultMaterials is the material table used when the catalog file does not list any.
func DefaultMaterials() []domain.Material {
	return []domain.Material{
		{ID: 0, Name: "unknown"},
		{ID: 1, Name: "flesh"},
		{ID: 2, Name: "meat"},
		{ID: 7, Name: "gold"},
		{ID: 8, Name: "silver"},
		{ID: 10, Name: "copper"},
		{ID: 11, Name: "iron"},
		{ID: 12, Name: "steel"},
		{ID: 14, Name: "wood"},
		{ID: 15, Name: "stone"},
		{ID: 16, Name: "leather"},
		{ID: 17, Name: "cloth"},
		{ID: 37, Name: "birchwood"},
		{ID: 38, Name: "pinewood"},
		{ID: 39, Name: "oakenwood"},
	}
}
