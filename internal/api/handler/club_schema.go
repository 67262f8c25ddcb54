package handler

type createClubRequest struct {
	BelongIdx        int64  `json:"belong_idx" validate:"gte=0"`
	BigCategoryIdx   int64  `json:"big_category_idx" validate:"gte=0"`
	SmallCategoryIdx int64  `json:"small_category_idx" validate:"gte=0"`
	Name             string `json:"name" validate:"required,min=2,max=50"`
	Summary          string `json:"summary" validate:"required,max=200"`
	IsRecruit        bool   `json:"is_recruit"`
	ProfileImage     string `json:"profile_image" validate:"required,url"`
	BannerImage      string `json:"banner_image" validate:"required,url"`
}

type createClubResponse struct {
	ClubIdx int64 `json:"club_idx"`
}

type joinRequestResponse struct {
	RequestIdx int64 `json:"request_idx"`
}

type setRecruitRequest struct {
	IsRecruit bool `json:"is_recruit"`
}
