package actions

import (
	"fmt"

	"github.com/jsamuelsen11/action-pipeline/internal/app"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/gallery"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Registry keys.
const (
	KeyGetGalleryItems      = "getGalleryItems"
	KeySetFollowingStatus   = "setFollowingStatus"
	KeyRefreshFollowerCount = "refreshFollowerCount"
	KeyCreateNotification   = "createNotification"
)

// Stores groups the store ports the actions read and write.
type Stores struct {
	People  ports.PersonStore
	Follows ports.FollowStore
	Gallery ports.GalleryStore
}

// Register adds every action to reg. handler receives the follow-up work
// queued by task actions.
func Register(reg *app.Registry, stores Stores, handler ports.TaskHandler) error {
	if err := reg.Register(KeyGetGalleryItems, NewGetGalleryItems(stores.Gallery), app.JSONParams[gallery.Query]()); err != nil {
		return fmt.Errorf("registering actions: %w", err)
	}
	if err := reg.RegisterTask(KeySetFollowingStatus, NewSetFollowingStatus(stores.People, stores.Follows, handler), app.JSONParams[FollowParams]()); err != nil {
		return fmt.Errorf("registering actions: %w", err)
	}
	if err := reg.Register(KeyRefreshFollowerCount, NewRefreshFollowerCount(stores.People), app.JSONParams[RefreshParams]()); err != nil {
		return fmt.Errorf("registering actions: %w", err)
	}
	if err := reg.Register(KeyCreateNotification, NewCreateNotification(stores.People, stores.Follows), app.JSONParams[NotificationParams]()); err != nil {
		return fmt.Errorf("registering actions: %w", err)
	}
	return nil
}
