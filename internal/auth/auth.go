package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ukydev/car-maintenance/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrRevokedToken       = errors.New("token revoked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
)

// DefaultTokenExpiry is used when no positive expiry is configured.
const DefaultTokenExpiry = 24 * time.Hour

// RefreshTokenExpiry is how long an unused refresh token can be exchanged.
const RefreshTokenExpiry = 7 * 24 * time.Hour

type refreshEntry struct {
	userID string
	exp    time.Time
}

// Service handles authentication operations
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // token id -> token expiry
	refresh map[string]refreshEntry
	now     func() time.Time
}

// NewService creates a new authentication service
func NewService(secret string, exp time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if exp <= 0 {
		exp = DefaultTokenExpiry
	}
	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  exp,
		revoked:   make(map[string]time.Time),
		refresh:   make(map[string]refreshEntry),
		now:       time.Now,
	}, nil
}

// TokenExpiry returns how long issued tokens stay valid.
func (s *Service) TokenExpiry() time.Duration {
	return s.tokenExp
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash
func (s *Service) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken generates a JWT token for a user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"jti":      uuid.NewString(),
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenExp).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// GenerateRefreshToken generates and remembers a single-use refresh token
// for userID.
func (s *Service) GenerateRefreshToken(userID string) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(bytes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.refresh[token] = refreshEntry{userID: userID, exp: s.now().Add(RefreshTokenExpiry)}
	return token, nil
}

// ConsumeRefreshToken exchanges a refresh token for the id of its user. The
// token is forgotten, so each one works once.
func (s *Service) ConsumeRefreshToken(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.refresh[token]
	if !ok {
		return "", ErrInvalidToken
	}
	delete(s.refresh, token)
	if s.now().After(entry.exp) {
		return "", ErrExpiredToken
	}
	return entry.userID, nil
}

// DropRefreshTokens forgets every refresh token issued to userID.
func (s *Service) DropRefreshTokens(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.refresh {
		if entry.userID == userID {
			delete(s.refresh, token)
		}
	}
}

// ValidateToken validates a JWT token and returns the claims.
// Revoked tokens are rejected with ErrRevokedToken.
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if s.isRevoked(claims.ID) {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

func (s *Service) parse(tokenString string) (*models.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := claims["jti"].(string)
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		ID:       id,
		UserID:   userID,
		Username: username,
		Exp:      int64(exp),
	}, nil
}

// Revoke invalidates a still valid token until it would have expired anyway.
func (s *Service) Revoke(tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ID == "" {
		return ErrInvalidToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.revoked[claims.ID] = time.Unix(claims.Exp, 0)
	return nil
}

func (s *Service) isRevoked(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}

// pruneLocked forgets revocations and refresh tokens that have expired.
// Caller holds s.mu.
func (s *Service) pruneLocked() {
	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	for token, entry := range s.refresh {
		if now.After(entry.exp) {
			delete(s.refresh, token)
		}
	}
}

// ExtractTokenFromHeader extracts token from Authorization header
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// ValidatePassword validates password strength
func (s *Service) ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// ValidateEmail validates email format
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidateUsername validates username format
func (s *Service) ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters long")
	}
	if len(username) > 50 {
		return errors.New("username must be at most 50 characters long")
	}
	return nil
}

// ValidateRegistration checks every field of a registration request.
func (s *Service) ValidateRegistration(req models.RegisterRequest) error {
	if err := s.ValidateUsername(req.Username); err != nil {
		return err
	}
	if err := s.ValidateEmail(req.Email); err != nil {
		return err
	}
	return s.ValidatePassword(req.Password)
}
