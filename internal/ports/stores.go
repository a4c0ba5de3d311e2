package ports

import (
	"context"

	"github.com/jsamuelsen11/action-pipeline/internal/domain/gallery"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/person"
)

// PersonStore reads and maintains people in the social graph.
type PersonStore interface {
	// FindPersonByAccountID returns the person with the given account id.
	// Returns domain.ErrNotFound if no such person exists.
	FindPersonByAccountID(ctx context.Context, accountID string) (*person.Person, error)

	// FindPersonByID returns the person with the given id.
	// Returns domain.ErrNotFound if no such person exists.
	FindPersonByID(ctx context.Context, id int64) (*person.Person, error)

	// RefreshFollowerCount recomputes and stores the person's follower count
	// and returns the new value.
	// Returns domain.ErrNotFound if no such person exists.
	RefreshFollowerCount(ctx context.Context, personID int64) (int, error)
}

// FollowStore records follow relationships and their notifications.
type FollowStore interface {
	// SetFollowing makes followerID follow or unfollow followingID and
	// reports whether anything changed.
	SetFollowing(ctx context.Context, followerID, followingID int64, following bool) (bool, error)

	// CreateNotification stores n and sets its ID.
	CreateNotification(ctx context.Context, n *person.Notification) error
}

// GalleryStore lists gallery items.
type GalleryStore interface {
	// ListGalleryItems returns the window of items selected by q.
	ListGalleryItems(ctx context.Context, q gallery.Query) (*gallery.Page, error)
}
