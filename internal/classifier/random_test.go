package classifier

import (
	"strings"
	"testing"

	"github.com/ckasturi/sift/internal/rules"
	"github.com/stretchr/testify/assert"
)

func TestIsRandom(t *testing.T) {
	keywords := rules.Default().Keywords()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "gibberish",
			text: "xqzt plmbr wxyzk qqqrs mmnbv",
			want: true,
		},
		{
			name: "too short to judge",
			text: "xqzt ab",
			want: false,
		},
		{
			name: "too few long words",
			text: "aa bb xqzwtkjk cc dd",
			want: false,
		},
		{
			name: "real template text",
			text: "your account balance has been updated please verify the transaction",
			want: false,
		},
		{
			name: "promotional text",
			text: "exclusive discount offer valid till tomorrow shop now",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRandom(strings.ToLower(tt.text), keywords))
		})
	}
}
