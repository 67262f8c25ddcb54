package handler

import "time"

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createAccountRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Name          string  `json:"name" validate:"required,min=2,max=30"`
	AdmissionYear int     `json:"admission_year" validate:"required,gt=1900"`
	MajorIdxs     []int64 `json:"major_idxs" validate:"dive,gte=0"`
}

type createAccountResponse struct {
	AccountIdx int64 `json:"account_idx"`
}

// updateProfileRequest is a patch: nil fields are left untouched, a non-nil
// major_idxs replaces the full affiliation set.
type updateProfileRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	AdmissionYear *int     `json:"admission_year,omitempty" validate:"omitempty,gt=1900"`
	MajorIdxs     *[]int64 `json:"major_idxs,omitempty" validate:"omitempty,dive,gte=0"`
}

type profileResponse struct {
	Name          string    `json:"name"`
	PersonalColor string    `json:"personal_color"`
	AdmissionYear int       `json:"admission_year"`
	CreatedAt     time.Time `json:"created_at"`
	Majors        []string  `json:"majors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
