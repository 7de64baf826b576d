package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
)

func newRegistryService(t *testing.T, rm *fakeRepoManager) (*RegistryService, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	return NewRegistryService(newTestDB(t), rm, testConfig(), rec), rec
}

func TestRegister_FirstActorBecomesOwner(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	first, err := s.Register(context.Background(), "alice", []byte("salt"), []byte("verifier"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !first.IsOwner || !first.IsReviewer {
		t.Fatalf("first actor should be owner and reviewer, got owner=%v reviewer=%v", first.IsOwner, first.IsReviewer)
	}
	if first.Address == "" {
		t.Fatal("expected a generated address")
	}

	second, err := s.Register(context.Background(), "bob", []byte("salt"), []byte("verifier"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if second.IsOwner || second.IsReviewer {
		t.Fatal("second actor should hold no capabilities")
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	if _, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	if !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("expected ErrorUsernameTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	if _, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	pair, err := s.Login(context.Background(), "alice", []byte("v"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}

	if _, err := s.Login(context.Background(), "alice", []byte("wrong")); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
	if _, err := s.Login(context.Background(), "nobody", []byte("v")); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized for unknown user, got %v", err)
	}
}

func TestGetSalt_UnknownUserGetsRandomSalt(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	salt, err := s.GetSalt(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetSalt error: %v", err)
	}
	if len(salt) == 0 {
		t.Fatal("expected a random salt for an unknown user")
	}
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	if _, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	pair, err := s.Login(context.Background(), "alice", []byte("v"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	next, err := s.RefreshToken(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token should rotate")
	}

	if _, err := s.RefreshToken(context.Background(), pair.RefreshToken); err == nil {
		t.Fatal("old refresh token should be invalid after rotation")
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	rm.refreshTokens.tokens["old"] = &models.RefreshToken{
		ActorAddress: "a1", Token: "old", ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, err := s.RefreshToken(context.Background(), "old"); !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}

func TestAuthorizeReviewer(t *testing.T) {
	rm := newFakeRepoManager()
	s, rec := newRegistryService(t, rm)

	rm.actors.add(&models.Actor{Address: "owner", IsOwner: true, IsReviewer: true})
	rm.actors.add(&models.Actor{Address: "r1"})

	if err := s.AuthorizeReviewer(context.Background(), "owner", "r1"); err != nil {
		t.Fatalf("AuthorizeReviewer error: %v", err)
	}
	ok, err := s.IsAuthorizedReviewer(context.Background(), "r1")
	if err != nil || !ok {
		t.Fatalf("expected r1 authorized, got ok=%v err=%v", ok, err)
	}
	if !rec.Has(events.ReviewerAuthorized) {
		t.Fatal("expected ReviewerAuthorized signal")
	}

	// Authorizing twice rejects rather than silently succeeding.
	if err := s.AuthorizeReviewer(context.Background(), "owner", "r1"); !errors.Is(err, common.ErrorAlreadyAuthorized) {
		t.Fatalf("expected ErrorAlreadyAuthorized, got %v", err)
	}
}

func TestAuthorizeReviewer_NotOwner(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	rm.actors.add(&models.Actor{Address: "r2"})

	if err := s.AuthorizeReviewer(context.Background(), "r1", "r2"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestRevokeReviewer(t *testing.T) {
	rm := newFakeRepoManager()
	s, rec := newRegistryService(t, rm)

	rm.actors.add(&models.Actor{Address: "owner", IsOwner: true, IsReviewer: true})
	rm.actors.add(&models.Actor{Address: "r1", IsReviewer: true})
	rm.actors.add(&models.Actor{Address: "plain"})

	if err := s.RevokeReviewer(context.Background(), "owner", "r1"); err != nil {
		t.Fatalf("RevokeReviewer error: %v", err)
	}
	ok, _ := s.IsAuthorizedReviewer(context.Background(), "r1")
	if ok {
		t.Fatal("r1 should no longer be a reviewer")
	}
	if !rec.Has(events.ReviewerRevoked) {
		t.Fatal("expected ReviewerRevoked signal")
	}

	if err := s.RevokeReviewer(context.Background(), "owner", "plain"); !errors.Is(err, common.ErrorNotAReviewer) {
		t.Fatalf("expected ErrorNotAReviewer, got %v", err)
	}
}

func TestIsAuthorizedReviewer_UnknownAddress(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newRegistryService(t, rm)

	ok, err := s.IsAuthorizedReviewer(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("IsAuthorizedReviewer error: %v", err)
	}
	if ok {
		t.Fatal("unknown address must not be a reviewer")
	}
}
