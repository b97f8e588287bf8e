package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	msg := Compose("Morgan", "Jordan")

	assert.True(t, strings.HasPrefix(msg, "Hi Morgan,\n\n"))
	assert.True(t, strings.HasSuffix(msg, "Thanks,\nJordan"))
	assert.Contains(t, msg, "Your current LinkedIn skills are already marked.")
}

func TestComposeEmptyNames(t *testing.T) {
	msg := Compose("", "")
	assert.True(t, strings.HasPrefix(msg, "Hi ,"))
	assert.True(t, strings.HasSuffix(msg, "Thanks,\n"))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "a\nb", Plain(`a\nb`))
	assert.Equal(t, "a\nb", Plain("a\r\nb"))
	assert.Equal(t, "trimmed", Plain("  trimmed \n"))
}

func TestHTML(t *testing.T) {
	got := HTML("Hi Morgan,\n\nFirst line\nSecond line\n\nThanks")
	assert.Equal(t, "<p>Hi Morgan,</p><p>First line<br>Second line</p><p>Thanks</p>", got)
}

func TestHTMLEscapes(t *testing.T) {
	got := HTML("a <b> & 'c'")
	assert.NotContains(t, got, "<b>")
	assert.Contains(t, got, "&lt;b&gt;")
}
