// Package session is the auth provider: it registers accounts, verifies
// credentials and issues the HS256 tokens the rest of the API trusts. There
// is no server-side session state; ending a session is the client discarding
// its token.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelindia-backend/internal/apperrors"
	"travelindia-backend/internal/models"
	"travelindia-backend/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLifetime     = 7 * 24 * time.Hour
	minPasswordLength = 6
)

// UserStore is the slice of the record store the provider needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID   string
	Email    string
	UserType models.UserType
}

// Session is an authenticated identity plus its bearer token.
type Session struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

type Provider struct {
	users  UserStore
	secret []byte
}

func NewProvider(users UserStore, secret string) *Provider {
	return &Provider{users: users, secret: []byte(secret)}
}

// Register creates a new account and signs the caller in. Validation runs
// before any store call.
func (p *Provider) Register(ctx context.Context, email, password, fullName string, userType models.UserType) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	fullName = strings.TrimSpace(fullName)

	if email == "" {
		return nil, apperrors.Validation("email", "Email is required")
	}
	if fullName == "" {
		return nil, apperrors.Validation("full_name", "Full name is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.Validation("password", "Password must be at least %d characters long", minPasswordLength)
	}
	if !models.ValidUserTypes[userType] {
		return nil, apperrors.Validation("user_type", "Account type must be 'tourist', 'driver', or 'guide'")
	}

	if _, err := p.users.GetByEmail(ctx, email); err == nil {
		return nil, &apperrors.AuthError{Message: "An account with this email already exists"}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Store("check existing user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Store("hash password", err)
	}

	now := time.Now().Unix()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		FullName:  fullName,
		UserType:  userType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.users.Create(ctx, user); err != nil {
		return nil, apperrors.Store("create user", err)
	}

	return p.newSession(user)
}

// Authenticate verifies credentials and returns a fresh session.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperrors.Validation("credentials", "Email and password are required")
	}

	user, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &apperrors.AuthError{Message: "Invalid email or password"}
	}
	if err != nil {
		return nil, apperrors.Store("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &apperrors.AuthError{Message: "Invalid email or password"}
	}

	return p.newSession(user)
}

// EndSession ends the caller's session. Tokens are stateless, so this only
// confirms the token was valid; the client drops it afterwards.
func (p *Provider) EndSession(token string) error {
	_, err := p.Verify(token)
	return err
}

// Verify parses and validates a bearer token and returns its identity.
func (p *Provider) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, &apperrors.AuthError{Message: "Invalid or expired session"}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, &apperrors.AuthError{Message: "Invalid or expired session"}
	}

	userID, _ := mapClaims["user_id"].(string)
	email, _ := mapClaims["email"].(string)
	userType, _ := mapClaims["user_type"].(string)
	if userID == "" {
		return Claims{}, &apperrors.AuthError{Message: "Invalid or expired session"}
	}

	return Claims{UserID: userID, Email: email, UserType: models.UserType(userType)}, nil
}

// ProfileFor loads the current profile for a verified identity.
func (p *Provider) ProfileFor(ctx context.Context, claims Claims) (*models.Profile, error) {
	user, err := p.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Store("load profile", err)
	}
	profile := user.ToProfile()
	return &profile, nil
}

func (p *Provider) newSession(user *models.User) (*Session, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": user.UserType,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return nil, apperrors.Store("sign token", err)
	}

	return &Session{Token: signed, Profile: user.ToProfile()}, nil
}
