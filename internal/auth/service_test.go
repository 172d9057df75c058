package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Andr3sPonc3M/AskWorld/internal/database"
	"github.com/Andr3sPonc3M/AskWorld/internal/models"
	"github.com/Andr3sPonc3M/AskWorld/internal/store"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *store.UserStore) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	users := store.NewUserStore(db)
	svc := NewService(users,
		NewHasher(bcrypt.MinCost, 4),
		NewTokenService("service-test-secret", "askworld", time.Hour))
	return svc, users
}

func register(t *testing.T, svc *Service, email string) (string, *models.User) {
	t.Helper()
	token, user, err := svc.Register(RegisterInput{
		Name:     "Ana Torres",
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	return token, user
}

// ============ register ============

func TestService_Register(t *testing.T) {
	svc, _ := newTestService(t)

	token, user, err := svc.Register(RegisterInput{
		Name:     "Ana Torres",
		Email:    "Ana@Example.com",
		Password: "secret123",
		Role:     "teacher",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Error("Register() returned an empty token")
	}
	if user.PasswordHash != "" {
		t.Error("returned user must never carry the password hash")
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("role = %q, want teacher", user.Role)
	}
	if !user.Active {
		t.Error("new users must start active")
	}

	// the issued token decodes back to the new user
	userID, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify(issued token) error = %v", err)
	}
	if userID != user.ID {
		t.Errorf("token user id = %d, want %d", userID, user.ID)
	}
}

func TestService_Register_DefaultRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, user := register(t, svc, "plain@example.com")
	if user.Role != models.RoleUser {
		t.Errorf("role = %q, want default %q", user.Role, models.RoleUser)
	}
}

func TestService_Register_EmailTaken(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "taken@example.com")

	// any case variant of a used email is rejected
	for _, email := range []string{"taken@example.com", "TAKEN@example.com", "Taken@Example.Com"} {
		_, _, err := svc.Register(RegisterInput{
			Name:     "Someone Else",
			Email:    email,
			Password: "other456",
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("Register(%s) error = %v, want ErrEmailTaken", email, err)
		}
	}
}

func TestService_Register_Invalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(RegisterInput{Name: "", Email: "bad", Password: "x"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Register() error = %v, want *ValidationError", err)
	}
	if len(verr.Errors) == 0 {
		t.Error("ValidationError carries no messages")
	}
}

func TestService_Register_UnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(RegisterInput{
		Name:     "Ana Torres",
		Email:    "role@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Register() error = %v, want *ValidationError", err)
	}

	// nothing may be persisted with a role outside the enumeration
	if _, err := svc.store.FindByEmail("role@example.com"); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("FindByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestService_Register_ConcurrentSameEmail(t *testing.T) {
	svc, _ := newTestService(t)

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Register(RegisterInput{
				Name:     "Race User",
				Email:    "race@example.com",
				Password: "secret123",
			})
		}(i)
	}
	wg.Wait()

	var ok, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrEmailTaken):
			taken++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || taken != 1 {
		t.Errorf("got %d successes and %d duplicates, want exactly 1 and 1", ok, taken)
	}
}

// ============ login ============

func TestService_Login(t *testing.T) {
	svc, _ := newTestService(t)
	_, created := register(t, svc, "login@example.com")

	token, user, err := svc.Login("login@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("logged in as %d, want %d", user.ID, created.ID)
	}
	if user.PasswordHash != "" {
		t.Error("returned user must never carry the password hash")
	}

	userID, err := svc.tokens.Verify(token)
	if err != nil || userID != created.ID {
		t.Errorf("issued token verify = (%d, %v), want (%d, nil)", userID, err, created.ID)
	}
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "known@example.com")

	// wrong password and unknown email fail identically
	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "known@example.com", "wrongpass1"},
		{"unknown email", "ghost@example.com", "secret123"},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(tc.email, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: Login() error = %v, want ErrInvalidCredentials", tc.name, err)
		}
	}
}

func TestService_Login_DisabledAccount(t *testing.T) {
	svc, users := newTestService(t)
	_, user := register(t, svc, "inactive@example.com")

	user.Active = false
	if err := users.Save(user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	_, _, err := svc.Login("inactive@example.com", "secret123")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("Login() error = %v, want ErrAccountDisabled", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("disabled account must not report invalid credentials")
	}
}

// ============ current user / logout ============

func TestService_CurrentUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, user := register(t, svc, "me@example.com")

	got, err := svc.CurrentUser(user.ID)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if got.Email != "me@example.com" || got.PasswordHash != "" {
		t.Errorf("CurrentUser() = %+v", got)
	}

	if _, err := svc.CurrentUser(99999); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("CurrentUser(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestService_Logout(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Logout(); err != nil {
		t.Errorf("Logout() error = %v, want nil", err)
	}
}
