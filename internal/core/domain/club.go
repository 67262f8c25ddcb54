package domain

import (
	"errors"
	"time"
)

// Position is the rank a member holds inside a club.
type Position string

const (
	PositionAdmin   Position = "ADMIN"
	PositionManager Position = "MANAGER"
	PositionMember  Position = "MEMBER"
)

var ErrClubNotFound = errors.New("club not found")
var ErrDuplicateClubName = errors.New("club name already in use")
var ErrInvalidReference = errors.New("referenced category does not exist")
var ErrRecruitingClosed = errors.New("club is not recruiting")
var ErrAlreadyMember = errors.New("already a member of this club")
var ErrDuplicateJoinRequest = errors.New("join request already pending")
var ErrUnauthenticated = errors.New("login required")
var ErrUnauthorized = errors.New("insufficient club position")

// Club is the aggregate root for club state. A club is created together with
// exactly one ADMIN member; it is never observable without one.
type Club struct {
	Idx              int64      `json:"idx" bson:"idx"`
	BelongIdx        int64      `json:"belong_idx" bson:"belong_idx"`
	BigCategoryIdx   int64      `json:"big_category_idx" bson:"big_category_idx"`
	SmallCategoryIdx int64      `json:"small_category_idx" bson:"small_category_idx"`
	Name             string     `json:"name" bson:"name"`
	Summary          string     `json:"summary" bson:"summary"`
	IsRecruit        bool       `json:"is_recruit" bson:"is_recruit"`
	ProfileImage     string     `json:"profile_image" bson:"profile_image"`
	BannerImage      string     `json:"banner_image" bson:"banner_image"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
	DeletedAt        *time.Time `json:"-" bson:"deleted_at"`
}

// ClubMember links an account to a club with a position.
type ClubMember struct {
	AccountIdx int64      `json:"account_idx" bson:"account_idx"`
	ClubIdx    int64      `json:"club_idx" bson:"club_idx"`
	Position   Position   `json:"position" bson:"position"`
	JoinedAt   time.Time  `json:"joined_at" bson:"joined_at"`
	DeletedAt  *time.Time `json:"-" bson:"deleted_at"`
}

// JoinRequest is a pending application to join a club. At most one active
// request may exist per (account, club) pair.
type JoinRequest struct {
	Idx        int64      `json:"idx" bson:"idx"`
	AccountIdx int64      `json:"account_idx" bson:"account_idx"`
	ClubIdx    int64      `json:"club_idx" bson:"club_idx"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	DeletedAt  *time.Time `json:"-" bson:"deleted_at"`
}

// Belong is the organisational unit a club is attached to (seeded reference data).
type Belong struct {
	Idx  int64  `json:"idx" bson:"idx"`
	Name string `json:"name" bson:"name"`
}

// BigCategory is the coarse club classification (seeded reference data).
type BigCategory struct {
	Idx  int64  `json:"idx" bson:"idx"`
	Name string `json:"name" bson:"name"`
}

// SmallCategory is the fine club classification (seeded reference data).
type SmallCategory struct {
	Idx  int64  `json:"idx" bson:"idx"`
	Name string `json:"name" bson:"name"`
}
