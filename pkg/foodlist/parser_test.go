package foodlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comma separated",
			text: "Rice, Dal,  Salad ,",
			want: []string{"Rice", "Dal", "Salad"},
		},
		{
			name: "line separated",
			text: "Rice\nDal\nSalad",
			want: []string{"Rice", "Dal", "Salad"},
		},
		{
			name: "mixed lines and commas",
			text: "Rice, Dal\nSalad, Soup\n",
			want: []string{"Rice", "Dal", "Salad", "Soup"},
		},
		{
			name: "blank lines and empty tokens dropped",
			text: "\n\n , ,Rice,\n",
			want: []string{"Rice"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "Rice, Dal, Salad", Join([]string{"Rice", "Dal", "Salad"}))
	assert.Equal(t, "", Join(nil))
}
