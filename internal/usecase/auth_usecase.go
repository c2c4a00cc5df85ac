package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	userRepo *repository.UserRepository
	cost     int
}

func NewAuthUsecase(userRepo *repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (uc *AuthUsecase) WithCost(cost int) *AuthUsecase {
	uc.cost = cost
	return uc
}

// Login signs in an existing user or registers a new one when the username
// is unknown. created reports whether the account was just made.
func (uc *AuthUsecase) Login(username, password string) (user *model.User, created bool, err error) {
	user, err = uc.userRepo.FindUserByUsername(username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, false, ErrInvalidPassword
		}
		return user, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}
	user = &model.User{Username: username, PasswordHash: string(hash)}
	if err := uc.userRepo.CreateUser(user); err != nil {
		return nil, false, err
	}

	log.Info().Uint("user_id", user.ID).Str("username", username).Msg("registered new user")
	return user, true, nil
}

func (uc *AuthUsecase) GetUser(id uint) (*model.User, error) {
	user, err := uc.userRepo.FindUserByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}
