package store

import "dr-dine-be/pkg/health"

// MaxUsers is how many user profile slots a session holds.
const MaxUsers = 3

// Pages the assistant UI can be on. The server tracks the current page as
// plain session state; rendering is the client's concern.
const (
	PageFoodInput     = "food_input"
	PageUploadReports = "upload_reports"
	PageChatbot       = "chatbot"
)

// UserProfile is one user's anthropometrics plus the conditions detected in
// their uploaded report. BMI, BMICategory and Conditions are derived fields:
// they are recomputed together on every update and never left stale relative
// to weight, height or the uploaded file.
type UserProfile struct {
	WeightKg    float64         `json:"weight_kg"`
	HeightCm    float64         `json:"height_cm"`
	BMI         float64         `json:"bmi"`
	BMICategory health.Category `json:"bmi_category"`
	Conditions  []string        `json:"conditions"`
}

// Session is the per-session assistant state held in memory. It is owned
// exclusively by its session; chat transcripts live in the database keyed by
// the same ID.
type Session struct {
	ID   string `json:"id"`
	Page string `json:"page"`

	// Food item text buffer, comma separated (manual entry or menu OCR).
	FoodItems string `json:"food_items"`

	// Up to three user profiles, indexed 0..2. Nil slots are unset.
	Users [MaxUsers]*UserProfile `json:"users"`

	// Text extracted from the last document uploaded on the chatbot page.
	ExtractedText string `json:"extracted_text"`
}

// NewSession returns a session with the original defaults: food-input page,
// empty buffers, no profiles.
func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		Page: PageFoodInput,
	}
}

// ValidPage reports whether page is one of the navigable pages.
func ValidPage(page string) bool {
	switch page {
	case PageFoodInput, PageUploadReports, PageChatbot:
		return true
	}
	return false
}
