package render

import (
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	old := ReplyStyle
	ReplyStyle = "notty"
	defer func() { ReplyStyle = old }()

	out, err := Reply("**Captain**: Hardik\n• Bumrah\n• Rashid", 40)
	if err != nil {
		t.Fatalf("Reply() error: %v", err)
	}
	for _, want := range []string{"Captain", "Hardik", "Bumrah", "Rashid"} {
		if !strings.Contains(out, want) {
			t.Errorf("Reply() missing %q in %q", want, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Errorf("trailing newlines should be trimmed, got %q", out)
	}
}

func TestReplyNarrowWidth(t *testing.T) {
	if _, err := Reply("Pick Bumrah for the death overs.", 5); err != nil {
		t.Fatalf("Reply() error: %v", err)
	}
}

func TestFormatMessage_HTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold then break", "**a**\nb", "<strong>a</strong><br>b"},
		{"bullet glyph", "• one\n• two", "&bull; one<br>&bull; two"},
		{"two bold spans", "**x** and **y**", "<strong>x</strong> and <strong>y</strong>"},
		{"bold does not cross lines", "**a\nb**", "**a<br>b**"},
		{"html escaped", "<b>hi</b> & bye", "&lt;b&gt;hi&lt;/b&gt; &amp; bye"},
		{"plain", "no markup", "no markup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMessage(tt.in, HTMLMarkup); got != tt.want {
				t.Errorf("FormatMessage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMessage_Terminal(t *testing.T) {
	markup := TerminalMarkup
	markup.Strong = func(s string) string { return "[" + s + "]" }

	got := FormatMessage("**a**\nb", markup)
	if got != "[a]\nb" {
		t.Errorf("FormatMessage() = %q, want %q", got, "[a]\nb")
	}

	out := FormatMessage("**Best Team**\n• Virat", TerminalMarkup)
	idxA := strings.Index(out, "Best Team")
	idxBreak := strings.Index(out, "\n")
	idxB := strings.Index(out, "• Virat")
	if idxA < 0 || idxBreak < idxA || idxB < idxBreak {
		t.Errorf("unexpected terminal output %q", out)
	}
	if strings.Contains(out, "**") {
		t.Errorf("bold markers should be consumed, got %q", out)
	}
}

func TestBulletLineRewrite(t *testing.T) {
	in := "**Best XI**\n• Virat\n  • Rohit\nnot • a bullet"
	want := "**Best XI**\n- Virat\n  - Rohit\nnot • a bullet"
	if got := bulletLine.ReplaceAllString(in, "$1- "); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
