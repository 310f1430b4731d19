package textnorm

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	mdLinkRe   = regexp.MustCompile(`\[(.*?)\]\(https?://[^\s)]+\)`)
	bareURLRe  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// StripMarkdown renders markdown-formatted content (forum posts, mostly) to
// plain text so downstream analyzers see words, not markup.
func StripMarkdown(input string) string {
	input = mdLinkRe.ReplaceAllString(input, "$1")

	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagRe.ReplaceAllString(string(rendered), " ")
	plain = bareURLRe.ReplaceAllString(plain, "")

	return strings.Join(strings.Fields(plain), " ")
}
