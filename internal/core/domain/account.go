package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already in use")
var ErrInvalidAffiliation = errors.New("unknown major affiliation")
var ErrAccountNotFound = errors.New("account not found")

// Account models a registered member. Accounts are never physically removed:
// DeletedAt is persisted as null while the account is active and set to the
// closure time on delete, which excludes the row from all active lookups.
type Account struct {
	Idx           int64      `json:"idx" bson:"idx"`
	Email         string     `json:"email" bson:"email"`
	PasswordHash  string     `json:"-" bson:"password_hash"`
	Name          string     `json:"name" bson:"name"`
	AdmissionYear int        `json:"admission_year" bson:"admission_year"`
	PersonalColor string     `json:"personal_color" bson:"personal_color"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
	DeletedAt     *time.Time `json:"-" bson:"deleted_at"`
}

// Major is seeded reference data; read-only to the core.
type Major struct {
	Idx  int64  `json:"idx" bson:"idx"`
	Name string `json:"name" bson:"name"`
}

// AccountMajor links an account to one major it holds. The set for an account
// is written atomically with the account and fully replaced on profile update.
type AccountMajor struct {
	AccountIdx int64 `json:"account_idx" bson:"account_idx"`
	MajorIdx   int64 `json:"major_idx" bson:"major_idx"`
}

// Profile is the member-facing view of an account.
type Profile struct {
	Name          string    `json:"name"`
	PersonalColor string    `json:"personal_color"`
	AdmissionYear int       `json:"admission_year"`
	CreatedAt     time.Time `json:"created_at"`
	Majors        []string  `json:"majors"`
}
