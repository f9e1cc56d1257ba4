package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/repository"
	"github.com/bhojansetu/bhojan-setu-api/pkg/jwt"
)

// SignupTxRunner runs the sign-up callback inside one DB transaction so the
// user and the profile rows are created atomically.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication flows: sign-up with profile metadata and sign-in.
type UseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	txRunner    SignupTxRunner
	jwtCfg      JWTConfig
}

// NewUseCase builds the auth usecase.
func NewUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, txRunner SignupTxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, profileRepo: profileRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Signup creates the user and their profile in one transaction, then returns a
// signed token. Returns ErrEmailAlreadyExists on duplicate email and
// ErrInvalidInput for an unknown role.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	if in.UserRole != entity.RoleVendor && in.UserRole != entity.RoleSupplier {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	languages := in.PreferredLanguages
	if len(languages) == 0 {
		languages = []string{"English"}
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:                 uuid.New().String(),
		UserID:             user.ID,
		FullName:           in.FullName,
		Location:           in.Location,
		ContactNumber:      in.ContactNumber,
		PreferredLanguages: languages,
		UserRole:           in.UserRole,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = uc.txRunner.RunSignup(ctx, func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.UserRole, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Profile: *toProfileResponse(profile)}, nil
}

// Login verifies email/password and returns a token plus the profile.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	profile, err := uc.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.UserRole, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Profile: *toProfileResponse(profile)}, nil
}

// GetProfile returns the caller's profile.
func (uc *UseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile updates the caller's mutable profile fields. Role never changes.
func (uc *UseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.ContactNumber != nil {
		profile.ContactNumber = *in.ContactNumber
	}
	if len(in.PreferredLanguages) > 0 {
		profile.PreferredLanguages = in.PreferredLanguages
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		FullName:           p.FullName,
		Location:           p.Location,
		ContactNumber:      p.ContactNumber,
		PreferredLanguages: p.PreferredLanguages,
		UserRole:           p.UserRole,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
