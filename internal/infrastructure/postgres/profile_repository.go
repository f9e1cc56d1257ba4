package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implements ProfileRepository over PostgreSQL (usable with pool or tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository builds the adapter. Pass a pool or a tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `id, user_id, full_name, location, contact_number, preferred_languages, user_role, created_at, updated_at`

// Create persists a new profile. One per user (unique user_id).
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.FullName, profile.Location, profile.ContactNumber,
		profile.PreferredLanguages, profile.UserRole, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID fetches the profile owned by a user.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Location, &p.ContactNumber,
		&p.PreferredLanguages, &p.UserRole, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// GetByUserIDs fetches all profiles whose user_id is in ids.
func (r *ProfileRepo) GetByUserIDs(ids []string) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.FullName, &p.Location, &p.ContactNumber,
			&p.PreferredLanguages, &p.UserRole, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update updates the profile's mutable fields. user_role never changes.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET full_name = $2, location = $3, contact_number = $4, preferred_languages = $5, updated_at = $6
		WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.FullName, profile.Location, profile.ContactNumber,
		profile.PreferredLanguages, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
