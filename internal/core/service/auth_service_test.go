package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
	nextID  int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.byEmail[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	created := cloneAccount(account)
	created.ID = "acct-" + strconv.Itoa(r.nextID)
	r.byEmail[created.Email] = cloneAccount(created)
	return created, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(r.byEmail))
	for _, a := range r.byEmail {
		accounts = append(accounts, cloneAccount(a))
	}
	return accounts, nil
}

func (r *stubAccountRepo) UpdatePhone(_ context.Context, email, phoneNumber string) (*domain.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.PhoneNumber = phoneNumber
	return cloneAccount(a), nil
}

// noopMetrics satisfies every core metrics port for tests that do not
// care about recording.
type noopMetrics struct{}

func (noopMetrics) AccountCreated()   {}
func (noopMetrics) LoginAttempt(bool) {}
func (noopMetrics) BookingCreated()   {}
func (noopMetrics) BookingConflict()  {}
func (noopMetrics) LockWait(float64)  {}
func (noopMetrics) ImageUploaded()    {}

func newTestAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), noopMetrics{}, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	token, account, err := svc.Signup(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token from signup (auto-login)")
	}
	if account.Role != domain.RoleCliente {
		t.Fatalf("public signup must create cliente accounts, got %s", account.Role)
	}
	if account.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	if _, _, err := svc.Signup(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "pass123"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "other"); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleCliente {
		t.Fatalf("expected role %s, got %s", domain.RoleCliente, claims.Role)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	_, _, _ = svc.Signup(context.Background(), "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// A failed login must look the same whether the email is unknown or the
// password is wrong; anything else lets callers enumerate registered
// emails.
func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	_, _, _ = svc.Signup(context.Background(), "dave@example.com", "goodpass")

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "goodpass")
	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email must yield ErrInvalidCredentials, got %v", unknownErr)
	}

	_, _, wrongPassErr := svc.Login(context.Background(), "dave@example.com", "badpass")
	if unknownErr != wrongPassErr {
		t.Fatalf("failure modes are distinguishable: %v vs %v", unknownErr, wrongPassErr)
	}
}

func TestAuthService_UpdatePhone(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Signup(context.Background(), "erin@example.com", "pass123")

	account, err := svc.UpdatePhone(context.Background(), "erin@example.com", "+55 11 91234-5678")
	if err != nil {
		t.Fatalf("UpdatePhone returned error: %v", err)
	}
	if account.PhoneNumber != "+55 11 91234-5678" {
		t.Fatalf("phone not updated: %q", account.PhoneNumber)
	}
}
