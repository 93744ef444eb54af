package domain

// ItemTemplate is the catalog view of an item type.
type ItemTemplate struct {
	ID          int32  `json:"id" db:"template_id" validate:"gt=0"`
	Name        string `json:"name" db:"name" validate:"required,max=100"`
	WeightGrams int32  `json:"weight_grams" db:"weight_grams" validate:"gte=0"`
	Rarity      int    `json:"rarity" db:"rarity" validate:"gte=0,lte=3"`
	Category    string `json:"category,omitempty" db:"category"`
}

// Material is a named material an item can be made of.
type Material struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}
