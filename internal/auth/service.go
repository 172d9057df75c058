package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Andr3sPonc3M/AskWorld/internal/models"
	"github.com/Andr3sPonc3M/AskWorld/internal/store"
)

// Service implements the authentication operations on top of the
// credential store, the password hasher and the token service.
type Service struct {
	store  *store.UserStore
	hasher *Hasher
	tokens *TokenService
}

func NewService(s *store.UserStore, h *Hasher, t *TokenService) *Service {
	return &Service{store: s, hasher: h, tokens: t}
}

// RegisterInput is the raw registration payload before validation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates an account and logs it in. The returned user never
// carries the password hash.
func (s *Service) Register(in RegisterInput) (string, *models.User, error) {
	if verr := ValidateRegister(&in); verr != nil {
		return "", nil, verr
	}

	role := models.RoleUser
	if in.Role != "" {
		parsed, err := models.ParseRole(in.Role)
		if err != nil {
			return "", nil, &ValidationError{Errors: []string{"invalid role"}}
		}
		role = parsed
	}

	// Early duplicate check for a friendly error. The unique index is
	// what actually guarantees uniqueness: two concurrent registrations
	// can both pass this lookup, and the store then rejects one of them.
	if _, err := s.store.FindByEmail(in.Email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return "", nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.store.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are reported identically; a disabled account is not.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	if verr := ValidateLogin(email, password); verr != nil {
		return "", nil, verr
	}

	user, err := s.store.FindByEmailWithPassword(email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		return "", nil, ErrAccountDisabled
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// CurrentUser loads the public projection of an already-authenticated user.
func (s *Service) CurrentUser(id uint) (*models.User, error) {
	return s.store.FindByID(id)
}

// Logout is stateless: tokens are not tracked server-side, so there is
// nothing to invalidate. The client discards its copy; the token stays
// valid until it expires.
func (s *Service) Logout() error {
	return nil
}
