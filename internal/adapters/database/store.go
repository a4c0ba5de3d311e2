package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/gallery"
	"github.com/jsamuelsen11/action-pipeline/internal/domain/person"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PrincipalSource = (*Store)(nil)
	_ ports.PersonStore     = (*Store)(nil)
	_ ports.FollowStore     = (*Store)(nil)
	_ ports.GalleryStore    = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Store implements the store ports on a sqlx database. Queries are written
// with ? placeholders and rebound for the connected driver.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewStore creates a Store over db.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// ext returns the transaction carried by ctx, or the pool.
func (s *Store) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return s.db
}

type personRow struct {
	ID            int64  `db:"id"`
	AccountID     string `db:"account_id"`
	OpenSocialID  string `db:"open_social_id"`
	DisplayName   string `db:"display_name"`
	Locked        bool   `db:"locked"`
	FollowerCount int    `db:"follower_count"`
}

func (r personRow) toDomain() *person.Person {
	return &person.Person{
		ID:            r.ID,
		AccountID:     r.AccountID,
		OpenSocialID:  r.OpenSocialID,
		DisplayName:   r.DisplayName,
		Locked:        r.Locked,
		FollowerCount: r.FollowerCount,
	}
}

const personColumns = `id, account_id, open_social_id, display_name, locked, follower_count`

// Principal resolves accountID to the caller identity.
func (s *Store) Principal(ctx context.Context, accountID string) (*domain.Principal, error) {
	p, err := s.FindPersonByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return p.Principal(), nil
}

// FindPersonByAccountID returns the person with the given account id.
func (s *Store) FindPersonByAccountID(ctx context.Context, accountID string) (*person.Person, error) {
	var row personRow
	q := s.db.Rebind(`SELECT ` + personColumns + ` FROM people WHERE account_id = ?`)
	if err := sqlx.GetContext(ctx, s.ext(ctx), &row, q, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person with account %q: %w", accountID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding person by account %q: %w", accountID, err)
	}
	return row.toDomain(), nil
}

// FindPersonByID returns the person with the given id.
func (s *Store) FindPersonByID(ctx context.Context, id int64) (*person.Person, error) {
	var row personRow
	q := s.db.Rebind(`SELECT ` + personColumns + ` FROM people WHERE id = ?`)
	if err := sqlx.GetContext(ctx, s.ext(ctx), &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding person %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// RefreshFollowerCount recomputes the person's follower count from the
// followers table and stores it.
func (s *Store) RefreshFollowerCount(ctx context.Context, personID int64) (int, error) {
	var count int
	q := s.db.Rebind(`
UPDATE people
SET follower_count = (SELECT COUNT(*) FROM followers WHERE following_id = ?)
WHERE id = ?
RETURNING follower_count`)
	if err := sqlx.GetContext(ctx, s.ext(ctx), &count, q, personID, personID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("person %d: %w", personID, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("refreshing follower count for %d: %w", personID, err)
	}
	return count, nil
}

// SetFollowing inserts or deletes the follow row and reports whether a row
// changed.
func (s *Store) SetFollowing(ctx context.Context, followerID, followingID int64, following bool) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if following {
		q := s.db.Rebind(`
INSERT INTO followers (follower_id, following_id, created_at)
VALUES (?, ?, ?)
ON CONFLICT (follower_id, following_id) DO NOTHING`)
		res, err = s.ext(ctx).ExecContext(ctx, q, followerID, followingID, s.now().UnixMilli())
	} else {
		q := s.db.Rebind(`DELETE FROM followers WHERE follower_id = ? AND following_id = ?`)
		res, err = s.ext(ctx).ExecContext(ctx, q, followerID, followingID)
	}
	if err != nil {
		return false, fmt.Errorf("setting following %d -> %d: %w", followerID, followingID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("setting following %d -> %d: %w", followerID, followingID, err)
	}
	return n > 0, nil
}

// CreateNotification stores n and sets its ID.
func (s *Store) CreateNotification(ctx context.Context, n *person.Notification) error {
	q := s.db.Rebind(`
INSERT INTO notifications (recipient_id, actor_id, kind, created_at)
VALUES (?, ?, ?, ?)
RETURNING id`)
	if err := sqlx.GetContext(ctx, s.ext(ctx), &n.ID, q,
		n.RecipientID, n.ActorID, string(n.Kind), s.now().UnixMilli(),
	); err != nil {
		return fmt.Errorf("creating notification for %d: %w", n.RecipientID, err)
	}
	return nil
}

// CountNotifications returns how many notifications recipientID has.
func (s *Store) CountNotifications(ctx context.Context, recipientID int64) (int, error) {
	var count int
	q := s.db.Rebind(`SELECT COUNT(*) FROM notifications WHERE recipient_id = ?`)
	if err := sqlx.GetContext(ctx, s.ext(ctx), &count, q, recipientID); err != nil {
		return 0, fmt.Errorf("counting notifications for %d: %w", recipientID, err)
	}
	return count, nil
}

type galleryRow struct {
	ID         int64  `db:"id"`
	Title      string `db:"title"`
	Category   string `db:"category"`
	URL        string `db:"url"`
	Popularity int    `db:"popularity"`
	CreatedAt  int64  `db:"created_at"`
}

// ListGalleryItems returns the window of items selected by q along with the
// total number of matching items.
func (s *Store) ListGalleryItems(ctx context.Context, q gallery.Query) (*gallery.Page, error) {
	where, args := "", []any{}
	if q.Category != "" {
		where, args = " WHERE category = ?", append(args, q.Category)
	}

	order := " ORDER BY created_at DESC, id DESC"
	if q.SortCriteria == gallery.SortPopularity {
		order = " ORDER BY popularity DESC, id DESC"
	}

	ext := s.ext(ctx)

	var total int
	if err := sqlx.GetContext(ctx, ext, &total, s.db.Rebind(`SELECT COUNT(*) FROM gallery_items`+where), args...); err != nil {
		return nil, fmt.Errorf("counting gallery items: %w", err)
	}

	var rows []galleryRow
	query := s.db.Rebind(`SELECT id, title, category, url, popularity, created_at FROM gallery_items` +
		where + order + ` LIMIT ? OFFSET ?`)
	if err := sqlx.SelectContext(ctx, ext, &rows, query, append(args, q.Limit(), q.StartIndex)...); err != nil {
		return nil, fmt.Errorf("listing gallery items: %w", err)
	}

	page := &gallery.Page{
		Items:      make([]gallery.Item, 0, len(rows)),
		Total:      total,
		StartIndex: q.StartIndex,
		EndIndex:   q.StartIndex + len(rows),
	}
	for _, r := range rows {
		page.Items = append(page.Items, gallery.Item{
			ID:         r.ID,
			Title:      r.Title,
			Category:   r.Category,
			URL:        r.URL,
			Popularity: r.Popularity,
			CreatedAt:  time.UnixMilli(r.CreatedAt).UTC(),
		})
	}
	return page, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
