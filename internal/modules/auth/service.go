package auth

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// MockLoginName is the display name every credential login receives.
// There is no account store behind the login form.
const MockLoginName = "Test User"

const ResetLinkMessage = "A password reset link has been sent to your email."

type Service struct {
	tokens TokenIssuer
	log    logrus.FieldLogger
}

func NewService(tokens TokenIssuer, log logrus.FieldLogger) *Service {
	return &Service{tokens: tokens, log: log}
}

// Login accepts any filled in credentials. Callers validate presence.
func (s *Service) Login(_ context.Context, _ LoginRequest) (*AuthResult, error) {
	return s.start(UserData{Name: MockLoginName})
}

func (s *Service) Register(_ context.Context, req RegisterRequest) (*AuthResult, error) {
	if req.Pass != req.CPass {
		return nil, ErrPasswordMismatch
	}
	return s.start(UserData{Name: req.Name, Pic: req.Profile})
}

// ForgotPassword only acknowledges the request.
func (s *Service) ForgotPassword(_ context.Context, req ForgotPasswordRequest) string {
	s.log.WithField("email", req.Email).Info("password reset requested")
	return ResetLinkMessage
}

func (s *Service) start(u UserData) (*AuthResult, error) {
	var session Session
	session.Login(u)

	token, err := s.tokens.GenerateToken(session.UserName, session.UserPic)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.log.WithField("user", session.UserName).Info("session started")
	return &AuthResult{Token: token, Session: session}, nil
}
