package dto

// SignupRequest creates a user plus their marketplace profile in one call.
type SignupRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=8"`
	FullName           string   `json:"full_name" validate:"required,min=1,max=200"`
	UserRole           string   `json:"user_role" validate:"required,oneof=vendor supplier"`
	Location           string   `json:"location"`
	ContactNumber      string   `json:"contact_number"`
	PreferredLanguages []string `json:"preferred_languages" validate:"required,min=1"`
}

// LoginRequest email/password sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse token plus the signed-in profile.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
