package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/chenjq/photofolio/internal/client/api"
	"github.com/chenjq/photofolio/internal/client/models"
	"github.com/chenjq/photofolio/internal/logging"
)

// GalleryService owns the one true collection of image records for a
// paginated listing, plus the lifecycle of fetch/delete/update requests
// against it.
//
// Pending flags are per operation kind: a delete in flight does not block a
// concurrent update, but two fetches (or two deletes, or two updates) never
// run concurrently — the second call is a no-op.
type GalleryService struct {
	client api.Client
	log    logging.Logger

	mu       sync.Mutex
	images   []models.Image
	pageSize int
	lastKey  *string
	hasMore  bool

	fetching bool
	deleting bool
	updating bool

	fetchErr  error
	deleteErr error
	updateErr error
}

func NewGalleryService(client api.Client, pageSize int, log logging.Logger) *GalleryService {
	return &GalleryService{client: client, pageSize: pageSize, hasMore: true, log: log}
}

// FetchNextPage loads the next page and appends it to the held collection.
// It is a no-op while a fetch is pending or after the listing terminated
// (hasMore false); a failed fetch preserves partial progress and leaves the
// cursor untouched.
func (g *GalleryService) FetchNextPage(ctx context.Context) error {
	g.mu.Lock()
	if g.fetching || !g.hasMore {
		g.mu.Unlock()
		return nil
	}
	g.fetching = true
	g.fetchErr = nil
	lastKey := g.lastKey
	pageSize := g.pageSize
	g.mu.Unlock()

	page, err := g.client.ListImages(ctx, lastKey, pageSize)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetching = false

	if err != nil {
		g.fetchErr = err
		return fmt.Errorf("fetch failed: %w", err)
	}

	// Append in response order; the server contract guarantees no repeated
	// ids within a pagination session, so no dedup and no re-sort.
	g.images = append(g.images, page.Images...)
	g.hasMore = page.HasMore
	g.lastKey = page.LastKey
	return nil
}

// Reset empties the collection and reinitializes the cursor. It never
// triggers a fetch itself.
func (g *GalleryService) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.images = nil
	g.lastKey = nil
	g.hasMore = true
	g.fetchErr = nil
	g.deleteErr = nil
	g.updateErr = nil
}

// DeleteOne removes an image on the server and, on success, from the held
// collection. Removing an id that is no longer held is not an error.
func (g *GalleryService) DeleteOne(ctx context.Context, imageID string) error {
	g.mu.Lock()
	if g.deleting {
		g.mu.Unlock()
		return nil
	}
	g.deleting = true
	g.deleteErr = nil
	g.mu.Unlock()

	err := g.client.DeleteImage(ctx, imageID)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleting = false

	if err != nil {
		g.deleteErr = err
		return fmt.Errorf("delete failed: %w", err)
	}

	for i := range g.images {
		if g.images[i].ImageID == imageID {
			g.images = append(g.images[:i], g.images[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateOne sends a sparse metadata patch for the image and merges the
// server's returned fields into the matching local record. If the record is
// gone locally (e.g. deleted concurrently) the merge is a no-op.
func (g *GalleryService) UpdateOne(ctx context.Context, imageID string, patch models.MetadataPatch) error {
	g.mu.Lock()
	if g.updating {
		g.mu.Unlock()
		return nil
	}
	g.updating = true
	g.updateErr = nil
	g.mu.Unlock()

	updated, err := g.client.UpdateImage(ctx, imageID, patch)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.updating = false

	if err != nil {
		g.updateErr = err
		return fmt.Errorf("update failed: %w", err)
	}

	for i := range g.images {
		if g.images[i].ImageID == imageID {
			if err := g.images[i].Merge(updated); err != nil {
				g.log.Warn(ctx, "merging updated fields", "imageID", imageID, "error", err)
			}
			break
		}
	}
	return nil
}

// Images returns a copy of the held collection in server order.
func (g *GalleryService) Images() []models.Image {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Image, len(g.images))
	copy(out, g.images)
	return out
}

func (g *GalleryService) HasMore() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasMore
}

func (g *GalleryService) LastKey() *string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastKey
}

func (g *GalleryService) Fetching() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fetching
}

// FetchErr returns the failure detail of the most recent fetch, or nil.
func (g *GalleryService) FetchErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fetchErr
}

func (g *GalleryService) DeleteErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deleteErr
}

func (g *GalleryService) UpdateErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updateErr
}
