package health

import "strings"

// SupportedConditions is the closed vocabulary of medical conditions the
// assistant can detect in report text. Matching is case-insensitive; the
// detector never returns a name outside this list.
var SupportedConditions = []string{
	"Diabetes",
	"Hypertension",
	"Obesity",
	"High Cholesterol",
	"Heart Disease",
	"PCOD",
	"Gout",
	"Liver Disease Irritable",
	"Lactose Intolerance",
	"Anxiety",
	"Cancer",
	"Asthma",
	"Allergy",
}

// DetectConditions returns every supported condition whose name appears as a
// case-insensitive substring of text. Pure and total: empty or garbage input
// yields an empty slice. Result order follows the vocabulary order.
func DetectConditions(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, cond := range SupportedConditions {
		if strings.Contains(lower, strings.ToLower(cond)) {
			found = append(found, cond)
		}
	}
	return found
}
