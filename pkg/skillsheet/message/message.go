// Package message composes the share message that accompanies a
// generated review workbook.
package message

import (
	"fmt"
	"html"
	"strings"
)

// Compose returns the share message for the client with both names
// substituted. Empty names are accepted as-is.
func Compose(clientName, senderName string) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"I've compiled a list of possible job titles and their skills for you."+
			" Your current LinkedIn skills are already marked."+
			" Please review the list and mark 'Yes' in the second column for any"+
			" additional skills you have.\n\n"+
			"Thanks,\n%s",
		clientName, senderName,
	)
}

var plainReplacer = strings.NewReplacer(`\n`, "\n", "\r\n", "\n")

// Plain normalizes a message for display: literal "\n" sequences and
// CRLF line endings become real newlines, and surrounding whitespace is
// trimmed.
func Plain(s string) string {
	return strings.TrimSpace(plainReplacer.Replace(s))
}

// HTML renders a plain message as escaped HTML where blank-line
// paragraph breaks become paragraph tags and single newlines become
// line breaks.
func HTML(s string) string {
	escaped := html.EscapeString(Plain(s))
	body := strings.ReplaceAll(escaped, "\n\n", "</p><p>")
	body = strings.ReplaceAll(body, "\n", "<br>")
	return "<p>" + body + "</p>"
}
