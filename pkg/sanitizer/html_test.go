package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "markup removed",
			input: "<h2>Title</h2><p>body <b>bold</b></p>",
			want:  "Titlebody bold",
		},
		{
			name:  "script element removed entirely",
			input: "before<script>alert(1)</script>after",
			want:  "beforeafter",
		},
		{
			name:  "entities resolved",
			input: "<p>a &amp; b &lt; c</p>",
			want:  "a & b < c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}
