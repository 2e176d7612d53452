package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		name          string
		message       string
		extractedText string
		want          string
	}{
		{
			name:    "bmi question",
			message: "what does my BMI mean?",
			want:    "Your BMI indicates your body fat. Refer to your section for BMI insights.",
		},
		{
			name:          "report with extracted text",
			message:       "show my report",
			extractedText: "Patient has Diabetes.",
			want:          "Patient has Diabetes....",
		},
		{
			name:    "report without upload",
			message: "any conditions found?",
			want:    "Please upload a report first.",
		},
		{
			name:    "food question",
			message: "recommend me something",
			want:    "Upload your menu and go to the Upload Reports section to get recommendations!",
		},
		{
			name:    "greeting",
			message: "Hello doctor",
			want:    "Hey there! 👋 How can I help today?",
		},
		{
			name:    "fallback",
			message: "xyz",
			want:    "I'm still learning! Try asking about food, reports, or BMI.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Respond(tt.message, tt.extractedText))
		})
	}
}

func TestRespondTruncatesLongReports(t *testing.T) {
	r := NewResponder()
	long := strings.Repeat("é", 600)

	got := r.Respond("report please", long)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, excerptLimit+3, len([]rune(got)))
	assert.Equal(t, strings.Repeat("é", excerptLimit), strings.TrimSuffix(got, "..."))
}

func TestRespondRulePriority(t *testing.T) {
	r := NewResponder()

	// "bmi" outranks "report" when both keywords appear.
	got := r.Respond("does my report change my bmi?", "some text")
	assert.Equal(t, "Your BMI indicates your body fat. Refer to your section for BMI insights.", got)
}
