package health

import "fmt"

// Category buckets a BMI value. Intervals are half-open with the lower bound
// inclusive: [18.5, 25) is Normal, [25, 30) is Overweight.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// InvalidInputError reports a degenerate anthropometric input, e.g. a
// non-positive height for which BMI is undefined.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v (must be positive)", e.Field, e.Value)
}

// BMI computes body-mass index from weight in kilograms and height in
// centimeters. Inputs are range-checked upstream by request validation, but
// BMI is undefined for non-positive dimensions, so it returns an
// *InvalidInputError rather than a sentinel value.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, &InvalidInputError{Field: "height", Value: heightCm}
	}
	if weightKg <= 0 {
		return 0, &InvalidInputError{Field: "weight", Value: weightKg}
	}

	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// CategoryFor maps a BMI value to its category, first match wins.
func CategoryFor(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
