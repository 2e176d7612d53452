package health

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{name: "normal adult", weightKg: 70, heightCm: 170, want: 24.22},
		{name: "underweight", weightKg: 50, heightCm: 170, want: 17.30},
		{name: "obese", weightKg: 95, heightCm: 174.6, want: 31.16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weightKg, tt.heightCm)
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestBMIInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		weightKg  float64
		heightCm  float64
		wantField string
	}{
		{name: "zero height", weightKg: 70, heightCm: 0, wantField: "height"},
		{name: "negative height", weightKg: 70, heightCm: -170, wantField: "height"},
		{name: "zero weight", weightKg: 0, heightCm: 170, wantField: "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMI(tt.weightKg, tt.heightCm)
			var invalid *InvalidInputError
			assert.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{bmi: 16.0, want: CategoryUnderweight},
		{bmi: 18.4, want: CategoryUnderweight},
		{bmi: 18.5, want: CategoryNormal},
		{bmi: 24.9, want: CategoryNormal},
		{bmi: 25.0, want: CategoryOverweight},
		{bmi: 29.9, want: CategoryOverweight},
		{bmi: 30.0, want: CategoryObese},
		{bmi: 42.0, want: CategoryObese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.bmi), "bmi %v", tt.bmi)
	}
}
