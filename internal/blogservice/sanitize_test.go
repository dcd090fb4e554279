package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeArticle(t *testing.T) {
	tests := []struct {
		name    string
		article string
		want    string
	}{
		{
			name:    "plain text untouched",
			article: "A perfectly ordinary article body.",
			want:    "A perfectly ordinary article body.",
		},
		{
			name:    "script tag removed",
			article: "before<script>alert('xss')</script>after",
			want:    "beforeafter",
		},
		{
			name:    "script tag with attributes removed",
			article: `before<script type="text/javascript">alert(1)</script>after`,
			want:    "beforeafter",
		},
		{
			name:    "mixed case script tag removed",
			article: "before<SCRIPT>alert(1)</SCRIPT>after",
			want:    "beforeafter",
		},
		{
			name:    "other markup preserved",
			article: "<p>hello <b>world</b></p>",
			want:    "<p>hello <b>world</b></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeArticle(tt.article))
		})
	}
}
