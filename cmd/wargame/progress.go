package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lox/wargame/internal/statistics"
)

const progressDots = 40

// progressBar prints a fixed-width row of dots as games complete. A nil
// progressBar ignores every call.
type progressBar struct {
	mu        sync.Mutex
	w         io.Writer
	total     int
	completed int
	dots      int
	start     time.Time
}

func newProgressBar(w io.Writer, total int) *progressBar {
	return &progressBar{w: w, total: total, start: time.Now()}
}

// Observe records one finished game. It is safe for concurrent use.
func (p *progressBar) Observe(statistics.GameResult) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	target := p.completed * progressDots / max(p.total, 1)
	for ; p.dots < target && p.dots < progressDots; p.dots++ {
		fmt.Fprint(p.w, ".")
	}
}

// Done fills the bar and prints the throughput.
func (p *progressBar) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for ; p.dots < progressDots; p.dots++ {
		fmt.Fprint(p.w, ".")
	}
	elapsed := time.Since(p.start)
	fmt.Fprintf(p.w, " ✓ %d games in %.1fs (%.0f/sec)\n",
		p.completed, elapsed.Seconds(), float64(p.completed)/elapsed.Seconds())
}
