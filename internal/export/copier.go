// Package export copies the finished paper transcript out of the tool.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// ConfirmationText is shown after a successful copy.
	ConfirmationText = "Copied to clipboard!"
	// ConfirmationTTL is how long the confirmation stays visible.
	ConfirmationTTL = 2 * time.Second
)

// ErrClipboardUnavailable is returned by a writer that cannot reach a
// clipboard at all.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ClipboardWriter places text on a clipboard.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(text string, ttl time.Duration)
}

// Copier writes text through a primary clipboard writer and falls back to a
// secondary one when the primary fails.
type Copier struct {
	primary  ClipboardWriter
	fallback ClipboardWriter
	notifier Notifier
}

// NewCopier builds a Copier. Any argument may be nil.
func NewCopier(primary, fallback ClipboardWriter, notifier Notifier) *Copier {
	return &Copier{primary: primary, fallback: fallback, notifier: notifier}
}

// Copy places text on the clipboard and posts the confirmation notice. When
// both writers fail the joined error is returned and nothing is shown.
func (c *Copier) Copy(ctx context.Context, text string) error {
	primaryErr := write(ctx, c.primary, text)
	if primaryErr == nil {
		c.confirm()
		return nil
	}

	fallbackErr := write(ctx, c.fallback, text)
	if fallbackErr == nil {
		c.confirm()
		return nil
	}
	return fmt.Errorf("copy to clipboard: %w", errors.Join(primaryErr, fallbackErr))
}

func (c *Copier) confirm() {
	if c.notifier != nil {
		c.notifier.Notify(ConfirmationText, ConfirmationTTL)
	}
}

func write(ctx context.Context, w ClipboardWriter, text string) error {
	if w == nil {
		return ErrClipboardUnavailable
	}
	return w.WriteText(ctx, text)
}
