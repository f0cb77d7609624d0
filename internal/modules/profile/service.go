package profile

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, log: log}
}

// GetProfile returns the saved profile of the session user, or the default
// profile when nothing has been saved yet.
func (s *Service) GetProfile(ctx context.Context, session *auth.Session) (*domain.Profile, error) {
	p, err := s.repo.GetByUserName(ctx, session.UserName)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	def := domain.DefaultProfile(session.UserName)
	if session.UserPic != "" {
		def.ProfilePic = session.UserPic
	}
	return &def, nil
}

func (s *Service) UpdateProfile(ctx context.Context, session *auth.Session, req UpdateProfileRequest) (*domain.Profile, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	p, err := s.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Email = req.Email
	p.Phone = req.Phone
	p.Address = req.Address
	p.Pincode = req.Pincode
	p.DOB = req.DOB
	if req.ProfilePic != "" {
		p.ProfilePic = req.ProfilePic
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// ChangePassword stores a bcrypt hash of the new password. The current
// password is checked only once a password has been set.
func (s *Service) ChangePassword(ctx context.Context, session *auth.Session, req ChangePasswordRequest) error {
	if fields := validator.Validate(req); fields != nil {
		return &ValidationError{Fields: fields}
	}
	if req.New != req.Confirm {
		return ErrPasswordMismatch
	}

	p, err := s.GetProfile(ctx, session)
	if err != nil {
		return err
	}

	if p.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Current)) != nil {
			return ErrIncorrectPassword
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.New), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	p.PasswordHash = string(hash)

	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	s.log.WithField("user", session.UserName).Info("password updated")
	return nil
}
