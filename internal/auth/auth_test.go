package auth_test

import (
	"errors"
	"testing"

	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/store"
	"github.com/pollbooth-dev/pollbooth/internal/testutil"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "secret123" {
		t.Fatal("Password stored in plaintext")
	}

	if !auth.CheckPassword(hash, "secret123") {
		t.Error("Expected correct password to verify")
	}
	if auth.CheckPassword(hash, "secret124") {
		t.Error("Expected wrong password to fail")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	sessions := auth.NewSessions("s3cret")

	token, err := sessions.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("Expected user id 42, got %d", userID)
	}
}

func TestSessionWrongSecret(t *testing.T) {
	token, err := auth.NewSessions("one-secret").Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := auth.NewSessions("other-secret").Verify(token); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
}

func TestSessionGarbageToken(t *testing.T) {
	if _, err := auth.NewSessions("s3cret").Verify("not-a-token"); err == nil {
		t.Error("Expected garbage token to fail verification")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	svc := auth.NewService(st)

	if _, err := svc.Register("alice", "secret123"); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, err := svc.Register("alice", "different456")
	if !errors.Is(err, auth.ErrUsernameTaken) {
		t.Fatalf("Expected ErrUsernameTaken, got %v", err)
	}

	// The failed attempt must not leave a second row behind.
	user, err := st.FindUserByUsername("alice")
	if err != nil {
		t.Fatalf("FindUserByUsername failed: %v", err)
	}
	if !auth.CheckPassword(user.PasswordHash, "secret123") {
		t.Error("Expected original password to survive the duplicate attempt")
	}
}

func TestAuthenticate(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	svc := auth.NewService(st)

	created, err := svc.Register("alice", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.Authenticate("alice", "secret123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("Expected user id %d, got %d", created.ID, user.ID)
	}

	if _, err := svc.Authenticate("alice", "wrongpass"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	if _, err := svc.Authenticate("nobody", "secret123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
