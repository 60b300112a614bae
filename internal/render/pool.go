package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

type replyKey struct {
	style string
	width int
}

// rendererPool hands out glamour renderers per style and width.
// A glamour.TermRenderer must not be shared between concurrent Render calls.
type rendererPool struct {
	mu    sync.RWMutex
	pools map[replyKey]*sync.Pool
}

var replies = &rendererPool{pools: make(map[replyKey]*sync.Pool)}

func (p *rendererPool) pool(key replyKey) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[key]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.pools[key]; ok {
		return pool
	}
	pool = &sync.Pool{
		New: func() any {
			r, err := newReplyRenderer(key)
			if err != nil {
				return nil
			}
			return r
		},
	}
	p.pools[key] = pool
	return pool
}

func (p *rendererPool) get(key replyKey) (*glamour.TermRenderer, error) {
	if r, ok := p.pool(key).Get().(*glamour.TermRenderer); ok && r != nil {
		return r, nil
	}
	return newReplyRenderer(key)
}

func (p *rendererPool) put(key replyKey, r *glamour.TermRenderer) {
	if r != nil {
		p.pool(key).Put(r)
	}
}

func (p *rendererPool) size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pools)
}

func (p *rendererPool) reset() {
	p.mu.Lock()
	p.pools = make(map[replyKey]*sync.Pool)
	p.mu.Unlock()
}

// Replies use real emoji and explicit line breaks, so newlines are kept.
func newReplyRenderer(key replyKey) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(key.width),
		glamour.WithPreservedNewLines(),
	)
}
