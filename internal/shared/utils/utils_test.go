package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pad Thai", "pad-thai"},
		{"Crème Brûlée (Classic)", "creme-brulee-classic"},
		{"  Phở   Bò  ", "pho-bo"},
		{"Jane rated 5 stars!", "jane-rated-5-stars"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Great recipe! ", "Great recipe!"},
		{"keeps comparison", "x<y", "x<y"},
		{"keeps markup as text", "a <b>bold</b> tip", "a <b>bold</b> tip"},
		{"keeps escaped markup escaped", "&lt;script&gt;alert(1)&lt;/script&gt;", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"keeps ampersand", "Salt & pepper", "Salt & pepper"},
		{"keeps line breaks", "line one\nline two", "line one\nline two"},
		{"drops control characters", "nul\x00 and bell\x07", "nul and bell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<p>Whisk <strong>well</strong></p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Whisk <strong>well</strong></p>", out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "hi", Truncate("hi", 4))
}

func TestEmailPattern(t *testing.T) {
	for _, ok := range []string{"a@b.com", "first.last@sub.example.org", "x+tag@y.io"} {
		assert.True(t, EmailPattern.MatchString(ok), ok)
	}
	for _, bad := range []string{"not-an-email", "a@b", "a b@c.com", "@b.com", "a@@b.com", ""} {
		assert.False(t, EmailPattern.MatchString(bad), bad)
	}
}
