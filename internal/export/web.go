package export

import (
	"context"
	"sync"
)

// Delivery is the clipboard payload handed back to the browser with the
// next page render.
type Delivery struct {
	mu     sync.Mutex
	text   string
	legacy bool
	set    bool
}

// Take returns the pending payload and clears it.
func (d *Delivery) Take() (text string, legacy bool, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, legacy, ok = d.text, d.legacy, d.set
	d.text, d.legacy, d.set = "", false, false
	return text, legacy, ok
}

func (d *Delivery) put(text string, legacy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text, d.legacy, d.set = text, legacy, true
}

// APIWriter delivers text to the browser's asynchronous clipboard API.
// It fails when the browser did not report the API as available.
type APIWriter struct {
	Supported bool
	Out       *Delivery
}

func (w APIWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !w.Supported || w.Out == nil {
		return ErrClipboardUnavailable
	}
	w.Out.put(text, false)
	return nil
}

// SelectionWriter delivers text as a pre-selected read-only text area that
// the browser copies with the legacy selection command.
type SelectionWriter struct {
	Out *Delivery
}

func (w SelectionWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.Out == nil {
		return ErrClipboardUnavailable
	}
	w.Out.put(text, true)
	return nil
}
