// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/person, domain/gallery).
// This root package holds the action pipeline's error taxonomy, the caller
// Principal and the UserActionRequest follow-up work item.
package domain
