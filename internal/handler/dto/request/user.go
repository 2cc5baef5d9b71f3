package request

import (
	"eatyaar/internal/pkg/patch"
	"eatyaar/internal/usecase/queries"
)

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	City  *string `json:"city" binding:"omitempty"`
	Area  *string `json:"area" binding:"omitempty"`
}

// Apply merges the partial update over the current profile.
func (r *UpdateProfileRequest) Apply(existing *queries.UserProfileView) (name, email, city, area string) {
	name = patch.Coalesce(r.Name, existing.Name)
	email = patch.Coalesce(r.Email, existing.Email)
	city = patch.Coalesce(r.City, existing.City)
	area = patch.Coalesce(r.Area, existing.Area)
	return name, email, city, area
}
