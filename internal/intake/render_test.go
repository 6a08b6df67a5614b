package intake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML_EscapesMarkup(t *testing.T) {
	t.Parallel()

	html := renderHTML(Submission{
		Name:    "Asha",
		Email:   "a@x.com",
		Message: "<script>alert(1)</script>",
	})

	require.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	require.NotContains(t, html, "<script>")
}

func TestRenderHTML_EscapesAllFields(t *testing.T) {
	t.Parallel()

	html := renderHTML(Submission{
		Name:       "<b>Asha</b>",
		Email:      "a&b@x.com",
		Phone:      "<999>",
		Message:    "hi",
		LoanType:   "Auto & Home",
		SourcePage: "<Home>",
	})

	require.NotContains(t, html, "<b>Asha</b>")
	require.Contains(t, html, "&lt;b&gt;Asha&lt;/b&gt;")
	require.Contains(t, html, "a&amp;b@x.com")
	require.Contains(t, html, "&lt;999&gt;")
	require.Contains(t, html, "Auto &amp; Home")
	require.Contains(t, html, "&lt;Home&gt;")
}

func TestRenderHTML_NewlinesBecomeLineBreaks(t *testing.T) {
	t.Parallel()

	html := renderHTML(Submission{
		Name:    "Asha",
		Email:   "a@x.com",
		Message: "line one\nline two\nline three",
	})
	require.Equal(t, 2, strings.Count(html, "<br>"))

	// CRLF counts as a single break
	html = renderHTML(Submission{
		Name:    "Asha",
		Email:   "a@x.com",
		Message: "line one\r\nline two",
	})
	require.Equal(t, 1, strings.Count(html, "<br>"))
}

func TestRenderHTML_Placeholders(t *testing.T) {
	t.Parallel()

	html := renderHTML(Submission{
		Name:    "Asha",
		Email:   "a@x.com",
		Message: "hello",
	})

	require.Contains(t, html, "Not provided")
	require.Contains(t, html, "Not specified")
	require.Contains(t, html, "Submitted via Website")
}

func TestRenderText_KeepsRawValuesAndNewlines(t *testing.T) {
	t.Parallel()

	text := renderText(Submission{
		Name:    "Asha & co",
		Email:   "a@x.com",
		Message: "line one\nline two",
	})

	require.Contains(t, text, "Asha & co")
	require.Contains(t, text, "line one\nline two")
	require.NotContains(t, text, "<br>")
	require.NotContains(t, text, "&amp;")
}
