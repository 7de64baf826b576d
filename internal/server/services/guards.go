package services

import (
	"context"
	"errors"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/repositories/actors"
)

// Capability guards. Each operation calls exactly the predicate it needs;
// the three roles (owner, reviewer, submitter-or-reviewer) are independent
// checks, not a hierarchy.

func getActor(ctx context.Context, repo actors.Repository, address string) (*models.Actor, error) {
	actor, err := repo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return actor, nil
}

func requireOwner(ctx context.Context, repo actors.Repository, address string) error {
	actor, err := getActor(ctx, repo, address)
	if err != nil {
		return err
	}
	if !actor.IsOwner {
		return common.ErrorUnauthorized
	}
	return nil
}

func requireReviewer(ctx context.Context, repo actors.Repository, address string) error {
	actor, err := getActor(ctx, repo, address)
	if err != nil {
		return err
	}
	if !actor.IsReviewer {
		return common.ErrorUnauthorized
	}
	return nil
}

func requireSubmitterOrReviewer(ctx context.Context, repo actors.Repository, address, submitter string) error {
	if address == submitter {
		return nil
	}
	actor, err := getActor(ctx, repo, address)
	if err != nil {
		return err
	}
	if !actor.IsReviewer {
		return common.ErrorUnauthorized
	}
	return nil
}
