package entity

import "time"

// Valid roles for Profile.
const (
	RoleVendor   = "vendor"
	RoleSupplier = "supplier"
)

// Profile is the marketplace identity attached to a User. One per user.
// UserRole is immutable after sign-up.
type Profile struct {
	ID                 string
	UserID             string
	FullName           string
	Location           string
	ContactNumber      string
	PreferredLanguages []string
	UserRole           string // vendor, supplier
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
