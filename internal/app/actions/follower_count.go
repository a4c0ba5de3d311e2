package actions

import (
	"errors"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// RefreshParams are the parameters of refreshFollowerCount.
type RefreshParams struct {
	PersonID int64 `json:"personId"`
}

// FollowerCount is returned by refreshFollowerCount.
type FollowerCount struct {
	PersonID int64 `json:"personId"`
	Count    int   `json:"count"`
}

type refreshFollowerCount struct {
	people ports.PersonStore
}

// NewRefreshFollowerCount builds the background action that recomputes a
// person's follower count.
func NewRefreshFollowerCount(people ports.PersonStore) *pipeline.Action {
	r := refreshFollowerCount{people: people}
	return pipeline.NewBackgroundAction(KeyRefreshFollowerCount, r, r)
}

func (r refreshFollowerCount) Validate(c *appctx.Context) error {
	params, err := appctx.ParamsAs[RefreshParams](c)
	if err != nil {
		return err
	}
	if params.PersonID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"personId": "must be positive"}}
	}
	return nil
}

func (r refreshFollowerCount) Execute(c *appctx.Context) (any, error) {
	params, err := appctx.ParamsAs[RefreshParams](c)
	if err != nil {
		return nil, err
	}

	count, err := r.people.RefreshFollowerCount(c, params.PersonID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.ExecutionError{Reason: "person no longer exists", Cause: err}
	}
	if err != nil {
		return nil, err
	}
	return &FollowerCount{PersonID: params.PersonID, Count: count}, nil
}
