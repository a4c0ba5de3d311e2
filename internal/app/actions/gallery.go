package actions

import (
	"fmt"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/gallery"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

type galleryItems struct {
	store ports.GalleryStore
}

// NewGetGalleryItems builds the read-only service action that lists a window
// of gallery items. Params are a gallery.Query.
func NewGetGalleryItems(store ports.GalleryStore) *pipeline.Action {
	g := galleryItems{store: store}
	return pipeline.NewServiceAction(KeyGetGalleryItems, g, g, g, pipeline.WithReadOnly())
}

func (g galleryItems) Validate(c *appctx.Context) error {
	q, err := appctx.ParamsAs[gallery.Query](c)
	if err != nil {
		return err
	}
	return q.Validate()
}

func (g galleryItems) Authorize(c *appctx.Context) error {
	if c.Principal() == nil {
		return &domain.AuthorizationError{Reason: "sign in to browse the gallery"}
	}
	return nil
}

func (g galleryItems) Execute(c *appctx.Context) (any, error) {
	q, err := appctx.ParamsAs[gallery.Query](c)
	if err != nil {
		return nil, err
	}

	page, err := g.store.ListGalleryItems(c, q)
	if err != nil {
		return nil, fmt.Errorf("listing gallery items: %w", err)
	}
	return page, nil
}
