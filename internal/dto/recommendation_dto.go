package dto

type RecommendRequest struct {
	TopN int `json:"top_n" validate:"omitempty,gte=1,lte=20"`
}

// Per-user recommendation outcome states.
const (
	RecommendationStatusOK           = "ok"
	RecommendationStatusNoConditions = "no_conditions"
	RecommendationStatusNoSuitable   = "no_suitable"
	RecommendationStatusEmptySlot    = "empty_slot"
)

type UserRecommendation struct {
	UserIndex int      `json:"user_index"`
	Status    string   `json:"status"`
	Foods     []string `json:"foods,omitempty"`
}

type RecommendResponse struct {
	Results []UserRecommendation `json:"results"`
}
