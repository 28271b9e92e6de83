package emotion

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // keep only the link text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and flattens the result to a single
// line of plain text without links.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return RemoveLinks(strings.Join(strings.Fields(plainText), " "))
}

// PlainText wraps next so it only ever sees markdown-free text. Text that is
// left blank after cleanup is invalid and never reaches next.
func PlainText(next Scorer) Scorer {
	return ScorerFunc(func(ctx context.Context, text string) (Result, error) {
		plain := ConvertMarkdownToText(text)
		if IsBlank(plain) {
			return Invalid(), nil
		}
		return next.Score(ctx, plain)
	})
}
