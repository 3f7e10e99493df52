package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/usecase/interfaces"
)

var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 12 * time.Hour

// IUserUseCase covers the minimal principal management the system needs:
// registering inspectors and authenticating them. Authorization policy is the
// presentation layer's problem; the token is a convenience, not a gate.

type IUserUseCase interface {
	Register(ctx context.Context, username, password, displayName string, role entities.UserRole) (entities.User, error)
	Authenticate(ctx context.Context, username, password string) (entities.User, string, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Register(ctx context.Context, username, password, displayName string, role entities.UserRole) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrInvalidUsername
	}
	if strings.TrimSpace(password) == "" {
		return entities.User{}, ErrInvalidPassword
	}
	if role == "" {
		role = entities.UserRoleUser
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidRole
	}

	// Usernames are unique case-insensitively; the medium has no index, so the
	// check is a scan over the loaded set.
	existing, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Username, username) {
			return entities.User{}, ErrUserAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.repo.Insert(ctx, entities.User{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
		Role:         role,
	})
	if err != nil {
		return entities.User{}, err
	}
	zap.S().Infof("[user][usecase] registered username=%s role=%s", created.Username, created.Role)
	return created, nil
}

// Authenticate checks the password against the stored bcrypt hash and issues
// an HS256 token carrying username, display name and role.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	users, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.User{}, "", err
	}

	for _, user := range users {
		if !strings.EqualFold(user.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			break
		}
		token, err := signUserToken(user)
		if err != nil {
			return entities.User{}, "", err
		}
		zap.S().Infof("[user][usecase] authenticated username=%s", user.Username)
		return user, token, nil
	}

	zap.S().Warnf("[user][usecase] authentication refused username=%s", username)
	return entities.User{}, "", ErrInvalidCredentials
}

func signUserToken(u entities.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.Username,
		"name": u.DisplayName,
		"role": string(u.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret()))
}

func tokenSecret() string {
	if v := os.Getenv("AUTH_TOKEN_SECRET"); v != "" {
		return v
	}
	return "dev-secret"
}
