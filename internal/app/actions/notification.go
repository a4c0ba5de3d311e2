package actions

import (
	"errors"
	"fmt"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/person"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// NotificationParams are the parameters of createNotification.
type NotificationParams struct {
	RecipientID int64 `json:"recipientId"`
	ActorID     int64 `json:"actorId"`
}

type createNotification struct {
	people  ports.PersonStore
	follows ports.FollowStore
}

// NewCreateNotification builds the background action that tells a person
// they gained a follower.
func NewCreateNotification(people ports.PersonStore, follows ports.FollowStore) *pipeline.Action {
	n := createNotification{people: people, follows: follows}
	return pipeline.NewBackgroundAction(KeyCreateNotification, n, n)
}

func (n createNotification) Validate(c *appctx.Context) error {
	params, err := appctx.ParamsAs[NotificationParams](c)
	if err != nil {
		return err
	}

	verr := domain.NewValidationError()
	if params.RecipientID <= 0 {
		verr.Add("recipientId", "must be positive")
	}
	if params.ActorID <= 0 {
		verr.Add("actorId", "must be positive")
	}
	if params.RecipientID == params.ActorID {
		verr.Add("actorId", "must differ from recipientId")
	}
	if verr.HasErrors() {
		return verr
	}

	if _, err := n.people.FindPersonByID(c, params.RecipientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			verr.Add("recipientId", "does not exist")
			return verr
		}
		return fmt.Errorf("resolving recipient: %w", err)
	}
	return nil
}

func (n createNotification) Execute(c *appctx.Context) (any, error) {
	params, err := appctx.ParamsAs[NotificationParams](c)
	if err != nil {
		return nil, err
	}

	note := &person.Notification{
		RecipientID: params.RecipientID,
		ActorID:     params.ActorID,
		Kind:        person.NotificationFollow,
	}
	if err := n.follows.CreateNotification(c, note); err != nil {
		return nil, &domain.ExecutionError{Reason: "could not record notification", Cause: err}
	}
	return note, nil
}
