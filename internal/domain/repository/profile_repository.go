package repository

import "github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"

// ProfileRepository is the persistence port for Profile (DIP).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	// GetByUserIDs fetches all profiles whose user_id is in ids; used by the
	// readers to build their supplier/vendor lookup maps.
	GetByUserIDs(ids []string) ([]*entity.Profile, error)
	Update(profile *entity.Profile) error
}
