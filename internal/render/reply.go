package render

import (
	"regexp"
	"strings"
)

// ReplyStyle is the glamour standard style used for AI replies.
var ReplyStyle = "dark"

// Backend replies bullet with "• " which markdown does not know.
var bulletLine = regexp.MustCompile(`(?m)^(\s*)• `)

// Reply renders an AI reply as markdown wrapped to width.
func Reply(text string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := replies.get(replyKey{style: ReplyStyle, width: width})
	if err != nil {
		return "", err
	}
	defer replies.put(replyKey{style: ReplyStyle, width: width}, r)

	out, err := r.Render(bulletLine.ReplaceAllString(text, "$1- "))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
