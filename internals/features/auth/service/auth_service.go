// Package service: login admin tunggal dan token sesi JWT.
package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"legisq_backend/internals/configs"
	"legisq_backend/internals/constants"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotConfigured      = errors.New("admin login is not configured")
)

// Session: identitas admin yang sudah terverifikasi untuk satu request.
type Session struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) IsAdmin() bool { return s.Role == constants.RoleAdmin }

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	Secret       []byte
	Password     string
	PasswordHash string
	TTL          time.Duration
	Now          func() time.Time
}

func NewAuthenticator(secret, password, passwordHash string, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Authenticator{
		Secret:       []byte(secret),
		Password:     password,
		PasswordHash: strings.TrimSpace(passwordHash),
		TTL:          ttl,
		Now:          time.Now,
	}
}

func NewAuthenticatorFromConfig() *Authenticator {
	return NewAuthenticator(configs.JWTSecret, configs.AdminPassword, configs.AdminPasswordHash, configs.AdminTokenTTL)
}

// CheckPassword: hash bcrypt diutamakan, fallback ke password polos (constant time).
func (a *Authenticator) CheckPassword(password string) error {
	switch {
	case a.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	case a.Password != "":
		if subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) != 1 {
			return ErrInvalidCredentials
		}
		return nil
	default:
		return ErrNotConfigured
	}
}

// Login memverifikasi password lalu menerbitkan token HS256.
func (a *Authenticator) Login(password string) (string, Session, error) {
	if err := a.CheckPassword(password); err != nil {
		return "", Session{}, err
	}
	return a.Issue()
}

func (a *Authenticator) Issue() (string, Session, error) {
	if len(a.Secret) == 0 {
		return "", Session{}, ErrNotConfigured
	}
	now := a.Now()
	sess := Session{
		Subject:   constants.AdminSubject,
		Role:      constants.RoleAdmin,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(a.TTL),
	}
	claims := AdminClaims{
		Role: sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Subject,
			ID:        sess.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}
	return token, sess, nil
}

// Parse memvalidasi tanda tangan, exp, dan role admin.
func (a *Authenticator) Parse(raw string) (Session, error) {
	if len(a.Secret) == 0 {
		return Session{}, ErrNotConfigured
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Session{}, ErrInvalidToken
	}

	claims := &AdminClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Role != constants.RoleAdmin || claims.Subject != constants.AdminSubject {
		return Session{}, fmt.Errorf("%w: not an admin token", ErrInvalidToken)
	}

	sess := Session{Subject: claims.Subject, Role: claims.Role, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
