package service

import (
	"context"
	"errors"
	"testing"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	if clone.ID == "" {
		clone.ID = user.Email
	}
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) RoleByEmail(_ context.Context, email string) (string, error) {
	u, ok := r.users[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id string, name, email, phone, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Name, u.Email, u.Phone, u.Role = name, email, phone, role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) UpsertProfile(_ context.Context, email string, p domain.Profile) error {
	u, ok := r.users[email]
	if !ok {
		u = &domain.User{Email: email, ID: email}
		r.users[email] = u
	}
	u.Name, u.Address, u.Phone = p.Name, p.Address, p.Phone
	u.Age, u.Gender, u.Region = p.Age, p.Gender, p.Region
	if p.Role != "" {
		u.Role = p.Role
	}
	return nil
}

func (r *stubUserRepo) AppendLoginActivity(_ context.Context, email, date string) error {
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LoginActivity = append(u.LoginActivity, domain.LoginActivity{Date: date})
	return nil
}

func TestUserService_Register_Success(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	user, err := svc.Register(context.Background(), &domain.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleResident,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), &domain.User{Name: "NoEmail"}); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if _, err := svc.Register(context.Background(), &domain.User{
		Email: "bob@example.com",
		Role:  "superuser",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "bob@example.com"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), &domain.User{Email: "bob@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_RoleByEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), &domain.User{
		Email: "carol@example.com",
		Role:  domain.RoleEmployee,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	role, err := svc.RoleByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("RoleByEmail returned error: %v", err)
	}
	if role != domain.RoleEmployee {
		t.Fatalf("expected employee, got %q", role)
	}

	// A role change in the store is visible on the next read, no re-login.
	if err := svc.Update(context.Background(), "carol@example.com", ports.UpdateUserInput{
		Email: "carol@example.com",
		Role:  domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	role, err = svc.RoleByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("RoleByEmail returned error: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected admin after update, got %q", role)
	}

	if _, err := svc.RoleByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if err := svc.Update(context.Background(), "id1", ports.UpdateUserInput{Role: "root"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_SaveProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	if err := svc.SaveProfile(context.Background(), "", domain.Profile{Name: "X"}); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if err := svc.SaveProfile(context.Background(), "dave@example.com", domain.Profile{Role: "root"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if err := svc.SaveProfile(context.Background(), "dave@example.com", domain.Profile{Name: "Dave", Age: 30}); err != nil {
		t.Fatalf("SaveProfile returned error: %v", err)
	}

	u, err := svc.GetByEmail(context.Background(), "dave@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if u.Name != "Dave" || u.Age != 30 {
		t.Fatalf("profile not applied: %+v", u)
	}
}

func TestUserService_RecordLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	if err := svc.RecordLogin(context.Background(), "", "2025-01-01"); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}

	if _, err := svc.Register(context.Background(), &domain.User{Email: "eve@example.com"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.RecordLogin(context.Background(), "eve@example.com", "2025-01-01"); err != nil {
		t.Fatalf("RecordLogin returned error: %v", err)
	}
	u, err := svc.GetByEmail(context.Background(), "eve@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if len(u.LoginActivity) != 1 || u.LoginActivity[0].Date != "2025-01-01" {
		t.Fatalf("login activity not recorded: %+v", u.LoginActivity)
	}
}
