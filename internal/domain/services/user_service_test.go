package services

import (
	"errors"
	"testing"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
)

func TestRegisterResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(t))

	user, err := svc.RegisterResident("12A", "9998887777", "pw12345")
	if err != nil {
		t.Fatalf("RegisterResident failed: %v", err)
	}
	if user.Role != models.RoleResident {
		t.Fatalf("role = %q, want resident", user.Role)
	}
	if user.PasswordHash == "pw12345" || len(user.PasswordHash) < 60 {
		t.Fatalf("password was not hashed: %q", user.PasswordHash)
	}
}

func TestRegisterResidentDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(t))

	if _, err := svc.RegisterResident("12A", "9998887777", "pw12345"); err != nil {
		t.Fatalf("RegisterResident failed: %v", err)
	}

	tests := []struct {
		name      string
		apartment string
		mobile    string
	}{
		{"same apartment", "12A", "1112223333"},
		{"same mobile", "14C", "9998887777"},
		{"same both", "12A", "9998887777"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RegisterResident(tt.apartment, tt.mobile, "pw"); !errors.Is(err, ErrDuplicateUser) {
				t.Fatalf("error = %v, want ErrDuplicateUser", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(t))

	registered, err := svc.RegisterResident("12A", "9998887777", "pw12345")
	if err != nil {
		t.Fatalf("RegisterResident failed: %v", err)
	}

	user, err := svc.Login("9998887777", "pw12345")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("logged in user id = %d, want %d", user.ID, registered.ID)
	}

	// Unknown mobile and bad password must fail identically
	if _, err := svc.Login("0000000000", "pw12345"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown mobile error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("9998887777", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetUserSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(t))

	user, err := svc.RegisterResident("12A", "9998887777", "pw12345")
	if err != nil {
		t.Fatalf("RegisterResident failed: %v", err)
	}

	summary, err := svc.GetUserSummary(user.ID)
	if err != nil {
		t.Fatalf("GetUserSummary failed: %v", err)
	}
	if summary.ApartmentNumber != "12A" || summary.MobileNumber != "9998887777" || summary.Role != models.RoleResident {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if _, err := svc.GetUserSummary(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user error = %v, want ErrUserNotFound", err)
	}
}
