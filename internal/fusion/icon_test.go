package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIcon(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"multiple emoji keeps first", "🔥🔥✨", "🔥"},
		{"single emoji unchanged", "🌻", "🌻"},
		{"legacy symbol block", "☕", "☕"},
		{"skin tone modifier kept", "👍🏽 nice", "👍🏽"},
		{"text before emoji", "icon: 🌊", "🌊"},
		{"plain text", "flower", "✨"},
		{"empty", "", "✨"},
		{"whitespace", "   ", "✨"},
		{"cjk text", "太阳", "✨"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeIcon(tc.in))
		})
	}
}
