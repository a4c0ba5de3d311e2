package domain

// Principal is the resolved identity of the caller of an action.
type Principal struct {
	// AccountID is the login identifier supplied by the caller.
	AccountID string
	// ID is the stable numeric identifier of the person.
	ID int64
	// OpenSocialID identifies the person to federated services.
	OpenSocialID string
}
