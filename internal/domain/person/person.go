package person

import "github.com/jsamuelsen11/action-pipeline/internal/domain"

// Person is a member of the social graph.
type Person struct {
	ID            int64
	AccountID     string
	OpenSocialID  string
	DisplayName   string
	Locked        bool
	FollowerCount int
}

// Principal returns the identity used when p calls an action.
func (p *Person) Principal() *domain.Principal {
	return &domain.Principal{
		AccountID:    p.AccountID,
		ID:           p.ID,
		OpenSocialID: p.OpenSocialID,
	}
}

// NotificationKind names what a notification is about.
type NotificationKind string

// Notification kinds.
const (
	NotificationFollow NotificationKind = "follow"
)

// Notification tells a person that someone acted on them.
type Notification struct {
	ID          int64
	RecipientID int64
	ActorID     int64
	Kind        NotificationKind
}
