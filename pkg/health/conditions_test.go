package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectConditions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single condition",
			text: "Patient shows signs of Diabetes and should avoid sugar.",
			want: []string{"Diabetes"},
		},
		{
			name: "case insensitive",
			text: "history of HYPERTENSION noted",
			want: []string{"Hypertension"},
		},
		{
			name: "multiple conditions in vocabulary order",
			text: "Obesity secondary to Diabetes; monitor Gout markers",
			want: []string{"Diabetes", "Obesity", "Gout"},
		},
		{
			name: "no conditions",
			text: "All labs within normal limits.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectConditions(tt.text))
		})
	}
}

func TestSupportedConditionsStable(t *testing.T) {
	assert.Len(t, SupportedConditions, 13)
	assert.Equal(t, "Diabetes", SupportedConditions[0])
	assert.Contains(t, SupportedConditions, "Liver Disease Irritable")
}
