package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/types"
)

type fakeUserRepo struct {
	byEmail map[string]*types.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, users []*types.User) ([]*types.User, error) {
	if f.byEmail == nil {
		f.byEmail = map[string]*types.User{}
	}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.byEmail {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmails(_ context.Context, _ *gorm.DB, emails []string) ([]*types.User, error) {
	var out []*types.User
	for _, e := range emails {
		if u, ok := f.byEmail[e]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, _ *gorm.DB, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	svc := NewUserService(nil, testLogger(), &fakeUserRepo{})

	user, err := svc.CreateUser(context.Background(), nil, "  Analyst@Example.COM ", " Jordan ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "analyst@example.com" {
		t.Fatalf("email should be lowercased and trimmed, got %q", user.Email)
	}
	if user.Name != "Jordan" {
		t.Fatalf("name should be trimmed, got %q", user.Name)
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(nil, testLogger(), repo)

	if _, err := svc.CreateUser(context.Background(), nil, "dup@example.com", "first"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateUser(context.Background(), nil, "dup@example.com", "second")
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(nil, testLogger(), &fakeUserRepo{})

	if _, err := svc.CreateUser(context.Background(), nil, "not-an-email", "name"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad email, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), nil, "ok@example.com", "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), nil, strings.Repeat(" ", 3), "name"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank email, got %v", err)
	}
}
