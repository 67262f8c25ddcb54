package domain

import "time"

// ActivityKind names a recorded domain event.
type ActivityKind string

const (
	ActivityAccountCreated   ActivityKind = "account.created"
	ActivityClubCreated      ActivityKind = "club.created"
	ActivityJoinRequested    ActivityKind = "club.join_requested"
	ActivityAccountDeleted   ActivityKind = "account.deleted"
	ActivityAccountLoggedIn  ActivityKind = "account.logged_in"
	ActivityAccountLoggedOut ActivityKind = "account.logged_out"
)

// Activity is an audit-trail entry. Recording is best-effort: a failed write
// is logged and never surfaced to the caller.
type Activity struct {
	Kind       ActivityKind `json:"kind" bson:"kind"`
	AccountIdx int64        `json:"account_idx" bson:"account_idx"`
	ClubIdx    int64        `json:"club_idx,omitempty" bson:"club_idx,omitempty"`
	OccurredAt time.Time    `json:"occurred_at" bson:"occurred_at"`
}
