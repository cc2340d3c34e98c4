package dto

type TierCreateDTO struct {
	Name        string  `json:"name" binding:"required" validate:"min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	PriceCents  int     `json:"price_cents" binding:"required" validate:"min=100"`
}

type TierDTO struct {
	ID          uint64  `json:"id"`
	CreatorID   uint64  `json:"creator_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceCents  int     `json:"price_cents"`
}
