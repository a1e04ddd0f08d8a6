// Package service implements the credential lifecycle: register, login and
// password reset as ordered, short-circuiting pipelines. The first failing
// step decides the outcome and nothing is written before every validation
// has passed.
package service

import (
	"context"
	"errors"

	"github.com/iliyamo/trainee-auth/internal/model"
	"github.com/iliyamo/trainee-auth/internal/repository"
	"github.com/iliyamo/trainee-auth/internal/utils"
	"github.com/iliyamo/trainee-auth/internal/validator"
)

// TraineeStore is the narrow contract this service needs from the durable
// record store. *repository.TraineeRepo satisfies it; tests provide an
// in-memory fake.
type TraineeStore interface {
	FindByPhone(ctx context.Context, phone string) (model.Trainee, error)
	FindByID(ctx context.Context, id uint64) (model.Trainee, error)
	Create(ctx context.Context, phone, passwordHash, name string) (model.Trainee, error)
	UpdatePasswordHash(ctx context.Context, id uint64, newHash string) error
}

// TraineeService orchestrates validation, hashing, storage and token
// issuing for trainee accounts.
type TraineeService struct {
	Store      TraineeStore
	JWTSecret  string
	TTLDays    int // access token validity window in days
	BcryptCost int
}

func NewTraineeService(store TraineeStore, jwtSecret string, ttlDays, bcryptCost int) *TraineeService {
	return &TraineeService{Store: store, JWTSecret: jwtSecret, TTLDays: ttlDays, BcryptCost: bcryptCost}
}

// Register validates the submitted credentials, hashes the password and
// creates the record. Step order matters: phone format, phone length,
// duplicate lookup, password format, then the single write. A concurrent
// duplicate that slips past the lookup is caught by the store's unique
// index and reported as ErrDuplicatePhone all the same.
func (s *TraineeService) Register(ctx context.Context, phone, password, name string) (model.Trainee, error) {
	if !validator.PhoneFormat(phone) {
		return model.Trainee{}, ErrInvalidPhoneFormat
	}
	if !validator.PhoneLength(phone) {
		return model.Trainee{}, ErrInvalidPhoneLength
	}
	if _, err := s.Store.FindByPhone(ctx, phone); err == nil {
		return model.Trainee{}, ErrDuplicatePhone
	} else if !errors.Is(err, repository.ErrTraineeNotFound) {
		return model.Trainee{}, err
	}
	if !validator.PasswordFormat(password) {
		return model.Trainee{}, ErrInvalidPasswordFormat
	}
	hash, err := utils.HashPassword(password, s.BcryptCost)
	if err != nil {
		return model.Trainee{}, err
	}
	t, err := s.Store.Create(ctx, phone, hash, name)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneExists) {
			return model.Trainee{}, ErrDuplicatePhone
		}
		return model.Trainee{}, err
	}
	return t, nil
}

// Login checks the credentials and issues an access token. An unknown phone
// number and a wrong password are reported as distinct errors.
func (s *TraineeService) Login(ctx context.Context, phone, password string) (utils.AccessToken, error) {
	t, err := s.Store.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrTraineeNotFound) {
			return utils.AccessToken{}, ErrInvalidPhone
		}
		return utils.AccessToken{}, err
	}
	if !utils.VerifyPassword(t.PasswordHash, password) {
		return utils.AccessToken{}, ErrInvalidPassword
	}
	return utils.NewAccessToken(s.JWTSecret, t.ID, s.TTLDays)
}

// ResetPassword replaces the password of an already-authenticated trainee.
// The new password must differ from the current one; that check runs before
// format validation, so a malformed password equal to the current one still
// reports ErrDuplicatePassword.
func (s *TraineeService) ResetPassword(ctx context.Context, t model.Trainee, newPassword string) error {
	if utils.VerifyPassword(t.PasswordHash, newPassword) {
		return ErrDuplicatePassword
	}
	if !validator.PasswordFormat(newPassword) {
		return ErrInvalidPasswordFormat
	}
	hash, err := utils.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.Store.UpdatePasswordHash(ctx, t.ID, hash)
}
