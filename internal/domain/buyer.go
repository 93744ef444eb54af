package domain

import "time"

// Buyer is an automated merchant that purchases items on behalf of its owner.
// Balance is the shop's purse in iron coins.
type Buyer struct {
	ID        string    `json:"id" db:"agent_id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	OwnerName string    `json:"owner_name" db:"owner_name"`
	Balance   int64     `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Offer describes an item a seller puts in front of a buyer.
type Offer struct {
	TemplateID int32   `json:"template_id" validate:"gt=0"`
	Material   uint8   `json:"material"`
	Quality    float32 `json:"quality" validate:"gte=0,lte=100"`
}
