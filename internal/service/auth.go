package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fittrack/fittrack-be/internal/auth"
	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/storage"
)

// ErrDuplicateIdentity is returned when the username or email is taken.
var ErrDuplicateIdentity = errors.New("username or email already exists")

// ErrInvalidCredentials is returned for both an unknown identity and a wrong
// password. The two cases are deliberately indistinguishable to callers so
// login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token    string
	UserID   int64
	Username string
	Email    string
}

// AuthService orchestrates registration and login against the credential
// store and the token manager. It holds no per-request state.
type AuthService struct {
	users  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(users storage.UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new identity and issues its first token. The email
// uniqueness check runs before the username check, so when both collide the
// email conflict is the one reported.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return AuthResult{}, ErrDuplicateIdentity
	}

	taken, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return AuthResult{}, ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A concurrent registration can still hit the unique index.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return AuthResult{}, ErrDuplicateIdentity
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(created)
}

// Login verifies credentials looked up by email first, then username, and
// issues a fresh token.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (AuthResult, error) {
	user, err := s.users.FindByEmailOrUsername(ctx, strings.TrimSpace(emailOrUsername))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user models.User) (AuthResult, error) {
	token, err := s.tokens.Generate(user.ID, user.Username, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
