package dto

// UpdateProfileRequest carries one user slot's form inputs. The weight and
// height ranges mirror the original form constraints.
type UpdateProfileRequest struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gte=10,lte=300"`
	HeightCm float64 `json:"height_cm" validate:"required,gte=50,lte=250"`
}

type ProfileResponse struct {
	UserIndex   int      `json:"user_index"`
	WeightKg    float64  `json:"weight_kg"`
	HeightCm    float64  `json:"height_cm"`
	BMI         float64  `json:"bmi"`
	BMICategory string   `json:"bmi_category"`
	Conditions  []string `json:"conditions"`

	// Notice carries the user-facing degradation message when an uploaded
	// report could not be read.
	Notice string `json:"notice,omitempty"`
}

type GetProfilesResponse struct {
	Users []*ProfileResponse `json:"users"`
}
