package services

import (
	"testing"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(newTestConfig(t))

	token, err := svc.GenerateToken(7, models.RoleCommittee)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.UserID != 7 || claims.Role != models.RoleCommittee {
		t.Fatalf("claims = %+v, want user 7 committee", claims)
	}
	if claims.Issuer != "society-backend" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
}

func TestTokenWrongKeyRejected(t *testing.T) {
	svc := NewJWTService(newTestConfig(t))
	other := NewJWTService(&config.Config{JWTSecretKey: "a different secret"})

	token, err := svc.GenerateToken(7, models.RoleResident)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.ExtractClaims(token); err == nil {
		t.Fatal("token verified under the wrong key")
	}
}

func TestTokenTamperingRejected(t *testing.T) {
	svc := NewJWTService(newTestConfig(t))

	token, err := svc.GenerateToken(7, models.RoleResident)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.ExtractClaims(tampered); err == nil {
		t.Fatal("tampered token verified")
	}
	if _, err := svc.ExtractClaims("not.a.token"); err == nil {
		t.Fatal("garbage token verified")
	}
}
