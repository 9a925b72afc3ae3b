package eraser

import (
	"context"
	"image"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/eraser/internal/imageio"
)

// LoadResult is the outcome of one asynchronous decode.
type LoadResult struct {
	Ticket LoadTicket
	Image  image.Image
	Format string
	Err    error
}

// Loader decodes images off the event loop. Results are delivered on
// Results() in completion order, which may differ from request order; the
// editor's tickets discard any result that was superseded in the meantime.
//
//	loader := eraser.NewLoader(ctx)
//	defer loader.Close()
//	_ = loader.Decode(ed.BeginLoad(), file)
//	for res := range loader.Results() {
//	    state, err := ed.Apply(res)
//	    ...
//	}
type Loader struct {
	ctx     context.Context
	cancel  context.CancelFunc
	group   errgroup.Group
	results chan LoadResult

	mu     sync.Mutex
	closed bool
}

// NewLoader creates a loader bound to ctx. Cancelling ctx abandons all
// in-flight decodes.
func NewLoader(ctx context.Context) *Loader {
	ctx, cancel := context.WithCancel(ctx)
	return &Loader{
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan LoadResult, 4),
	}
}

// Results returns the channel of decode results. It is closed by Close.
func (l *Loader) Results() <-chan LoadResult {
	return l.results
}

// Decode starts decoding r in the background for ticket t.
func (l *Loader) Decode(t LoadTicket, r io.Reader) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLoaderClosed
	}

	l.group.Go(func() error {
		img, format, err := imageio.Decode(&ctxReader{ctx: l.ctx, r: r})
		if l.ctx.Err() != nil {
			Logger().Debug("eraser: decode abandoned", slog.Uint64("ticket", t.generation))
			return nil
		}
		select {
		case l.results <- LoadResult{Ticket: t, Image: img, Format: format, Err: err}:
		case <-l.ctx.Done():
		}
		return nil
	})
	return nil
}

// Close abandons in-flight decodes, waits for their goroutines to exit and
// closes the Results channel. Close is idempotent.
func (l *Loader) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	err := l.group.Wait()
	close(l.results)
	return err
}

// ctxReader fails reads once its context is done, so a cancelled decode
// stops at the next read.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
