// Package deliver sends finished chunks to a destination one message at a
// time, spacing the sends so the destination is not flooded.
package deliver

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// Sender posts a single message.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(ctx context.Context, text string) error

func (f SenderFunc) Send(ctx context.Context, text string) error {
	return f(ctx, text)
}

// WriterSender writes every message to w, separated by a separator line.
type WriterSender struct {
	w         io.Writer
	separator string
	sent      int
}

// NewWriterSender creates a WriterSender. An empty separator writes a blank
// line between messages.
func NewWriterSender(w io.Writer, separator string) *WriterSender {
	return &WriterSender{w: w, separator: separator}
}

func (s *WriterSender) Send(_ context.Context, text string) error {
	if s.sent > 0 {
		if _, err := fmt.Fprintf(s.w, "%s\n", s.separator); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(s.w, "%s\n", text); err != nil {
		return err
	}
	s.sent++
	return nil
}

// Options configures a Deliverer.
type Options struct {
	// Interval 两次发送之间的最小间隔，0 表示不限速
	Interval time.Duration
	// Burst 允许连续发送的条数
	Burst int
}

// Deliverer sends chunks in order through a Sender.
type Deliverer struct {
	sender  Sender
	limiter *rate.Limiter
}

// New creates a Deliverer.
func New(sender Sender, opts Options) *Deliverer {
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	return &Deliverer{sender: sender, limiter: rate.NewLimiter(limit, burst)}
}

// Deliver sends chunks in order and stops at the first failure. It returns
// the number of chunks that were sent successfully.
func (d *Deliverer) Deliver(ctx context.Context, chunks []string) (int, error) {
	for i, chunk := range chunks {
		if err := d.limiter.Wait(ctx); err != nil {
			return i, fmt.Errorf("wait before chunk %d: %w", i, err)
		}
		if err := d.sender.Send(ctx, chunk); err != nil {
			return i, fmt.Errorf("send chunk %d: %w", i, err)
		}
	}
	return len(chunks), nil
}
