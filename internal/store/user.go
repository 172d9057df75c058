package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Andr3sPonc3M/AskWorld/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a lookup matches no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create hits the email unique index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user records. Emails are stored lowercased so the
// unique index is case-insensitive; uniqueness is enforced by the index
// itself, never by a check-then-insert in application code.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail returns the user with the given email, or ErrUserNotFound.
// The password hash is cleared; use FindByEmailWithPassword when verifying
// credentials.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	user, err := s.findByEmail(email)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// FindByEmailWithPassword returns the user including its password hash.
func (s *UserStore) FindByEmailWithPassword(email string) (*models.User, error) {
	return s.findByEmail(email)
}

func (s *UserStore) findByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id, hash cleared.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	user.PasswordHash = ""
	return &user, nil
}

// Create inserts a new user. Concurrent creates with the same email race on
// the unique index and exactly one wins; the loser gets ErrDuplicateEmail.
func (s *UserStore) Create(user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Save persists mutations to an existing user. A cleared hash is never
// written back over the stored one.
func (s *UserStore) Save(user *models.User) error {
	tx := s.db
	if user.PasswordHash == "" {
		tx = tx.Omit("password_hash")
	}
	if err := tx.Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// List returns all users ordered by id, hashes cleared.
func (s *UserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
