package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to stored credentials.
const bcryptCost = 12

var (
	// ErrInvalidCredentials signals wrong email or password. The same value is
	// returned for unknown accounts and bad passwords so callers cannot
	// enumerate registered emails.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingFields signals that a required registration field is absent.
	ErrMissingFields = errors.New("auth: name, email and password are required")
	// ErrInvalidRole signals a role outside the known set.
	ErrInvalidRole = errors.New("auth: invalid role")
)

// Service handles authentication business logic.
type Service struct {
	repo   Repository
	issuer *TokenIssuer
}

// LoginResult bundles the session view and sanitized user returned after a
// successful login.
type LoginResult struct {
	Session SessionView
	User    PublicUser
}

// NewService creates a new authentication service.
func NewService(repo Repository, issuer *TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
	}
}

// Register creates a new account. The plaintext password is bcrypt-hashed
// before it reaches the repository and never appears in the returned resource.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (PublicUser, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return PublicUser{}, ErrMissingFields
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return PublicUser{}, fmt.Errorf("auth: hash password: %w", err)
	}

	role := Role(strings.TrimSpace(string(req.Role)))
	if role == "" {
		role = RoleUser
	}
	if !isValidRole(role) {
		return PublicUser{}, fmt.Errorf("%w %q", ErrInvalidRole, role)
	}

	area := req.ResearchArea
	if area == nil {
		area = []string{}
	}

	user, err := s.repo.CreateUser(ctx, CreateUserParams{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(passwordHash),
		Name:         strings.TrimSpace(req.Name),
		Institution:  strings.TrimSpace(req.Institution),
		Role:         role,
		ResearchArea: area,
	})
	if err != nil {
		return PublicUser{}, err
	}

	return user.Public(), nil
}

// Login verifies credentials and issues session claims. Lookup misses and
// hash mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := s.issuer.Mint(user.ID, user.Role)
	session, err := s.issuer.SessionViewFor(claims)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Session: session,
		User:    user.Public(),
	}, nil
}

// RefreshSession re-mints an authenticated caller's claims without
// re-verifying credentials. No identity lookup happens here, so the role
// travels with the claims rather than being re-derived.
func (s *Service) RefreshSession(claims Claims) (SessionView, error) {
	return s.issuer.SessionViewFor(s.issuer.Refresh(claims))
}

// VerifyToken validates a signed token and returns its claims.
func (s *Service) VerifyToken(tokenString string) (Claims, error) {
	return s.issuer.Verify(tokenString)
}

// GetUserByID retrieves the sanitized account for an authenticated caller.
func (s *Service) GetUserByID(ctx context.Context, userID string) (PublicUser, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return PublicUser{}, err
	}
	return user.Public(), nil
}

func isValidRole(role Role) bool {
	switch role {
	case RoleUser, RoleResearcher, RoleAdmin:
		return true
	default:
		return false
	}
}
