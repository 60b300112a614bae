package render

import (
	"strings"
	"sync"
	"testing"
)

func TestReplyPoolPerWidth(t *testing.T) {
	replies.reset()
	defer replies.reset()

	key := replyKey{style: "dark", width: 60}
	first, err := replies.get(key)
	if err != nil || first == nil {
		t.Fatalf("get() = %v, %v", first, err)
	}
	replies.put(key, first)

	if _, err := replies.get(key); err != nil {
		t.Fatalf("second get() error: %v", err)
	}
	if replies.size() != 1 {
		t.Errorf("expected 1 pool, got %d", replies.size())
	}

	if _, err := replies.get(replyKey{style: "dark", width: 80}); err != nil {
		t.Fatalf("get() with new width error: %v", err)
	}
	if replies.size() != 2 {
		t.Errorf("expected 2 pools, got %d", replies.size())
	}
}

func TestReplyConcurrent(t *testing.T) {
	replies.reset()
	old := ReplyStyle
	ReplyStyle = "notty"
	defer func() {
		ReplyStyle = old
		replies.reset()
	}()

	var wg sync.WaitGroup
	outs := make([]string, 40)
	errs := make([]error, 40)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i], errs[i] = Reply("**Live**: MI vs CSK", 60)
		}(i)
	}
	wg.Wait()

	for i := range outs {
		if errs[i] != nil {
			t.Fatalf("Reply() error: %v", errs[i])
		}
		if !strings.Contains(outs[i], "MI vs CSK") {
			t.Errorf("Reply() = %q", outs[i])
		}
	}
	if replies.size() != 1 {
		t.Errorf("expected 1 pool after concurrent use, got %d", replies.size())
	}
}

func TestNewReplyRendererInvalidStyle(t *testing.T) {
	if _, err := newReplyRenderer(replyKey{style: "no-such-style", width: 40}); err == nil {
		t.Error("expected error for invalid style")
	}
}
