// Package session keeps one paper workspace per browser session. Live
// workspaces are held in memory; when a cache is configured every change is
// written through as a JSON snapshot so a session survives a restart.
package session

import (
	"sync"
	"time"

	"question-paper/internal/export"
	"question-paper/internal/paper"
	"question-paper/internal/render"
)

// Session is the per-browser state: the workspace plus the one-shot notice
// and clipboard payload shown on the next page render.
type Session struct {
	ID        string
	Workspace *paper.Workspace
	Clipboard *export.Delivery

	mu     sync.Mutex
	notice *render.Notice
}

func newSession(id string, ws *paper.Workspace) *Session {
	return &Session{ID: id, Workspace: ws, Clipboard: &export.Delivery{}}
}

// Notify posts an informational notice. It implements export.Notifier.
func (s *Session) Notify(text string, ttl time.Duration) {
	s.setNotice(&render.Notice{Text: text, Kind: render.NoticeInfo, DismissAfter: ttl})
}

// Warn posts a warning that stays until the next page load.
func (s *Session) Warn(text string) {
	s.setNotice(&render.Notice{Text: text, Kind: render.NoticeWarning})
}

func (s *Session) setNotice(n *render.Notice) {
	s.mu.Lock()
	s.notice = n
	s.mu.Unlock()
}

// TakeNotice returns the pending notice and clears it.
func (s *Session) TakeNotice() *render.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = nil
	return n
}

// TakeClipboard returns the pending clipboard payload, or nil.
func (s *Session) TakeClipboard() *render.ClipboardPayload {
	text, legacy, ok := s.Clipboard.Take()
	if !ok {
		return nil
	}
	return &render.ClipboardPayload{Text: text, Legacy: legacy}
}
