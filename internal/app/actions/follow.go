package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/person"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// FollowParams are the parameters of setFollowingStatus.
type FollowParams struct {
	TargetAccountID string `json:"targetAccountId"`
	Following       bool   `json:"following"`
}

// FollowResult is returned by setFollowingStatus.
type FollowResult struct {
	TargetAccountID string `json:"targetAccountId"`
	Following       bool   `json:"following"`
	Changed         bool   `json:"changed"`
	Queued          int    `json:"queued"`
}

// followTarget carries the person resolved during validation to the later
// stages.
var followTarget = appctx.NewStateKey[*person.Person]("follow.target")

type setFollowingStatus struct {
	people  ports.PersonStore
	follows ports.FollowStore
}

// NewSetFollowingStatus builds the service task action that makes the caller
// follow or unfollow another person. When anything changed it queues a
// follower-count refresh for the target and, on follow, a notification.
func NewSetFollowingStatus(people ports.PersonStore, follows ports.FollowStore, handler ports.TaskHandler) *pipeline.TaskAction {
	s := setFollowingStatus{people: people, follows: follows}
	return pipeline.NewServiceTaskAction(KeySetFollowingStatus, s, s, s, handler)
}

func (s setFollowingStatus) Validate(c *appctx.Context) error {
	params, err := appctx.ParamsAs[FollowParams](c)
	if err != nil {
		return err
	}

	verr := domain.NewValidationError()
	if strings.TrimSpace(params.TargetAccountID) == "" {
		verr.Add("targetAccountId", "is required")
		return verr
	}

	target, err := followTarget.GetOrFetch(c, func(ctx context.Context) (*person.Person, error) {
		return s.people.FindPersonByAccountID(ctx, params.TargetAccountID)
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		verr.Add("targetAccountId", "does not exist")
	case err != nil:
		return fmt.Errorf("resolving follow target: %w", err)
	case c.Principal() != nil && target.ID == c.Principal().ID:
		verr.Add("targetAccountId", "cannot follow yourself")
	}
	return verr.ErrOrNil()
}

func (s setFollowingStatus) Authorize(c *appctx.Context) error {
	params, err := appctx.ParamsAs[FollowParams](c)
	if err != nil {
		return err
	}
	target, ok := followTarget.Get(c)
	if !ok {
		return errors.New("follow target not resolved")
	}
	if params.Following && target.Locked {
		return &domain.AuthorizationError{Reason: "account " + target.AccountID + " does not accept followers"}
	}
	return nil
}

func (s setFollowingStatus) Execute(tc *appctx.TaskContext) (any, error) {
	params, err := appctx.ParamsAs[FollowParams](tc.Context)
	if err != nil {
		return nil, err
	}
	target, ok := followTarget.Get(tc.Context)
	if !ok {
		return nil, errors.New("follow target not resolved")
	}
	follower := tc.Principal()

	changed, err := s.follows.SetFollowing(tc, follower.ID, target.ID, params.Following)
	if err != nil {
		return nil, &domain.ExecutionError{Reason: "could not update following status", Cause: err}
	}

	if changed {
		if err := tc.EnqueueAction(KeyRefreshFollowerCount, RefreshParams{PersonID: target.ID}); err != nil {
			return nil, err
		}
		if params.Following {
			n := NotificationParams{RecipientID: target.ID, ActorID: follower.ID}
			if err := tc.EnqueueAction(KeyCreateNotification, n); err != nil {
				return nil, err
			}
		}
	}

	return &FollowResult{
		TargetAccountID: target.AccountID,
		Following:       params.Following,
		Changed:         changed,
		Queued:          tc.Len(),
	}, nil
}
