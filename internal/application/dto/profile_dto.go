package dto

import "time"

// ProfileResponse marketplace identity of a user.
type ProfileResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	FullName           string    `json:"full_name"`
	Location           string    `json:"location"`
	ContactNumber      string    `json:"contact_number"`
	PreferredLanguages []string  `json:"preferred_languages"`
	UserRole           string    `json:"user_role"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateProfileRequest mutable profile fields. Role is not updatable.
type UpdateProfileRequest struct {
	FullName           *string  `json:"full_name" validate:"omitempty,min=1,max=200"`
	Location           *string  `json:"location"`
	ContactNumber      *string  `json:"contact_number"`
	PreferredLanguages []string `json:"preferred_languages" validate:"omitempty,min=1"`
}
