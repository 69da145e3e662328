package token

import (
	"strings"
	"testing"
	"time"
)

func TestIssue_Verify_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	// クレームは変更されずにそのまま返ること
	if claims.User != "admin" {
		t.Errorf("claims.User = %q, want %q", claims.User, "admin")
	}
	if claims.Role != RoleAdmin {
		t.Errorf("claims.Role = %q, want %q", claims.Role, RoleAdmin)
	}
}

func TestIssue_TokenHasThreeSegments(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if got := len(strings.Split(signed, ".")); got != 3 {
		t.Errorf("JWT should have 3 segments, got %d", got)
	}
}

func TestVerify_WrongSecret_Fails(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	signed, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerify_MalformedToken_Fails(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Errorf("Verify(%q) should fail", tok)
		}
	}
}

func TestVerify_ExpiredToken_Fails(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	// 発行時刻を過去にずらし、期限切れトークンを作る
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(signed); err == nil {
		t.Error("expected verification of an expired token to fail")
	}
}

func TestVerify_TokenValidUntilExpiration(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	// 30分前に発行されたトークンは1時間の有効期限内
	svc.now = func() time.Time { return time.Now().Add(-30 * time.Minute) }

	signed, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(signed); err != nil {
		t.Errorf("token within its lifetime should verify, got %v", err)
	}
}
