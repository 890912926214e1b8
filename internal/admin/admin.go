package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 72 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotConfigured      = errors.New("admin account not configured")
)

// Service signs in the single back-office account configured through the
// environment and issues its tokens.
type Service struct {
	email        string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

func NewService(email, passwordHash, secret string) *Service {
	return &Service{
		email:        strings.TrimSpace(email),
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		now:          time.Now,
	}
}

func (s *Service) Authenticate(email, password string) error {
	if s.email == "" || len(s.passwordHash) == 0 || len(s.secret) == 0 {
		return ErrNotConfigured
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.email) {
		// compare anyway so response time does not depend on the address
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken returns an HS256 token for the admin account.
func (s *Service) IssueToken() (string, time.Time, error) {
	exp := s.now().Add(TokenTTL)
	claims := jwt.MapClaims{
		"sub":   "admin",
		"email": s.email,
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
