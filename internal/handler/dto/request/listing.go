package request

import (
	"time"

	"eatyaar/internal/usecase/commands"
)

type CreateListingRequest struct {
	Title        string    `json:"title" binding:"required,max=150"`
	Description  string    `json:"description" binding:"max=2000"`
	Servings     int       `json:"servings" binding:"required,min=1"`
	FoodType     string    `json:"food_type" binding:"required,oneof=VEG NON_VEG BOTH"`
	CookedAt     time.Time `json:"cooked_at" binding:"required"`
	PickupBy     time.Time `json:"pickup_by" binding:"required"`
	AreaName     string    `json:"area_name" binding:"required"`
	ExactAddress string    `json:"exact_address" binding:"required"`
	City         string    `json:"city" binding:"required"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
}

func (r *CreateListingRequest) ToCommand() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Title:        r.Title,
		Description:  r.Description,
		Servings:     r.Servings,
		FoodType:     r.FoodType,
		CookedAt:     r.CookedAt,
		PickupBy:     r.PickupBy,
		AreaName:     r.AreaName,
		ExactAddress: r.ExactAddress,
		City:         r.City,
		State:        r.State,
		Pincode:      r.Pincode,
	}
}
