// Package services contains server-side business logic. This file implements
// RegistryService, which handles actor registration, login, token refresh,
// and the owner-controlled reviewer capability.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/dbx"
	"github.com/avolkovx/privseal/internal/server/auth"
	"github.com/avolkovx/privseal/internal/server/config"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegistryService provides the actor registry operations:
// - Register: create actors; the first actor registered becomes the owner
// - Login / RefreshToken: verify credentials and mint tokens
// - AuthorizeReviewer / RevokeReviewer: owner-controlled reviewer capability
type RegistryService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	emitter                      events.Emitter
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewRegistryService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, emitter events.Emitter) *RegistryService {
	return &RegistryService{
		db:                           db,
		repomanager:                  m,
		emitter:                      emitter,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new actor with the given username, salt, and verifier,
// assigning a fresh server-generated address. The first actor ever
// registered is seeded as the owner, who is also a reviewer.
func (s *RegistryService) Register(ctx context.Context, username string, salt, verifier []byte) (*models.Actor, error) {
	if username == "" {
		return nil, common.ErrorInvalidInput
	}

	address, err := common.MakeRandHexString(20)
	if err != nil {
		return nil, common.ErrorInternal
	}

	actor := &models.Actor{Address: address, UserName: username, Salt: salt, Verifier: verifier}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Actors(tx)

		if _, err := repo.GetByUsername(ctx, username); err == nil {
			return common.ErrorUsernameTaken
		} else if !errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInternal
		}

		n, err := repo.Count(ctx)
		if err != nil {
			return common.ErrorInternal
		}
		if n == 0 {
			actor.IsOwner = true
			actor.IsReviewer = true
		}

		_, err = repo.Create(ctx, actor)
		if err != nil {
			return fmt.Errorf("error creating actor: %v", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return actor, nil
}

// GetSalt returns the actor's stored salt or a random salt if the username is
// absent, to avoid leaking existence through timing.
func (s *RegistryService) GetSalt(ctx context.Context, username string) ([]byte, error) {
	repo := s.repomanager.Actors(s.db)
	actor, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.getRandomSalt(), nil
		}
		return nil, common.ErrorInternal
	}
	return actor.Salt, nil
}

// Login verifies the provided verifierCandidate against the stored verifier
// and, on success, returns a new TokenPair.
func (s *RegistryService) Login(ctx context.Context, username string, verifierCandidate []byte) (*TokenPair, error) {
	repo := s.repomanager.Actors(s.db)
	actor, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !s.checkVerifier(actor.Verifier, verifierCandidate) {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, actor.Address, s.db)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *RegistryService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Get(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %v", err)
	}
	if token.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %v", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.ActorAddress, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// AuthorizeReviewer grants the reviewer capability. Owner only. Authorizing
// an already-authorized actor rejects rather than silently succeeding twice.
func (s *RegistryService) AuthorizeReviewer(ctx context.Context, caller, address string) error {
	if err := requireOwner(ctx, s.repomanager.Actors(s.db), caller); err != nil {
		return err
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Actors(tx)
		actor, err := repo.GetByAddress(ctx, address)
		if err != nil {
			return err
		}
		if actor.IsReviewer {
			return common.ErrorAlreadyAuthorized
		}
		return repo.SetReviewer(ctx, address, true)
	}); err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.ReviewerAuthorized, "actor", address, "by", caller)
	return nil
}

// RevokeReviewer removes the reviewer capability. Owner only.
func (s *RegistryService) RevokeReviewer(ctx context.Context, caller, address string) error {
	if err := requireOwner(ctx, s.repomanager.Actors(s.db), caller); err != nil {
		return err
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Actors(tx)
		actor, err := repo.GetByAddress(ctx, address)
		if err != nil {
			return err
		}
		if !actor.IsReviewer {
			return common.ErrorNotAReviewer
		}
		return repo.SetReviewer(ctx, address, false)
	}); err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.ReviewerRevoked, "actor", address, "by", caller)
	return nil
}

// IsAuthorizedReviewer reports whether the address currently holds the
// reviewer capability. Unknown addresses are simply not reviewers.
func (s *RegistryService) IsAuthorizedReviewer(ctx context.Context, address string) (bool, error) {
	actor, err := s.repomanager.Actors(s.db).GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, common.ErrorInternal
	}
	return actor.IsReviewer, nil
}

// --- helpers below ---

func (s *RegistryService) getRandomSalt() []byte { return common.GenerateRandByteArray(32) }

func (s *RegistryService) generateAccessToken(address string) (string, error) {
	return auth.GenerateToken(address, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *RegistryService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *RegistryService) checkVerifier(verifier []byte, candidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}

func (s *RegistryService) generateTokenPair(ctx context.Context, address string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(address)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, address, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
