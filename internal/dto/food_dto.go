package dto

// UpdateFoodRequest replaces the session's food item buffer (manual entry).
type UpdateFoodRequest struct {
	Items string `json:"items"`
}

type FoodListResponse struct {
	Items  string   `json:"items"`
	Parsed []string `json:"parsed"`
}
