package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "passes plain text through",
			input: "Alice Johnson",
			want:  "Alice Johnson",
		},
		{
			name:  "escapes script tags",
			input: "<script>alert('x')</script>",
			want:  "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		},
		{
			name:  "escapes attribute breakout",
			input: `"><img src=x onerror=alert(1)>`,
			want:  "&quot;&gt;&lt;img src=x onerror=alert(1)&gt;",
		},
		{
			name:  "escapes ampersand without double-encoding",
			input: "Smith & Sons <Holdings>",
			want:  "Smith &amp; Sons &lt;Holdings&gt;",
		},
		{
			name:  "escapes all five significant characters",
			input: `&<>"'`,
			want:  "&amp;&lt;&gt;&quot;&#39;",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeString(tt.input))
		})
	}
}

func TestEscapeString_NotIdempotentByDesign(t *testing.T) {
	// Each field must pass through the escaper exactly once; escaping an
	// already-escaped string re-encodes the introduced ampersands.
	once := escapeString("<b>")
	assert.Equal(t, "&lt;b&gt;", once)
	twice := escapeString(once)
	assert.Equal(t, "&amp;lt;b&amp;gt;", twice)
}
