package domain

// Rarity tiers used when colouring item names.
const (
	RarityCommon    = 0
	RarityRare      = 1
	RaritySupreme   = 2
	RarityFantastic = 3
)

