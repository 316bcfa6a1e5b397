// Package instructions renders a query's instructions section into the
// single markdown-style string carried by the leading system or
// developer message.
package instructions

import (
	"strings"

	"github.com/egokt/kanuni-openai/query"
)

// Render produces the instructions string for a query: the preamble
// followed by each titled section as a markdown heading and body.
// Sections with empty bodies are skipped.
func Render(q *query.Query) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(q.Instructions.Preamble))
	for _, s := range q.Instructions.Sections {
		body := strings.TrimSpace(s.Body)
		if body == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if title := strings.TrimSpace(s.Title); title != "" {
			b.WriteString("## ")
			b.WriteString(title)
			b.WriteString("\n\n")
		}
		b.WriteString(body)
	}
	return b.String()
}
