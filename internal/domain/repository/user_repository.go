package repository

import "github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
