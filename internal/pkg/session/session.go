// Package session keeps per-browser state on the server. The browser only
// carries an opaque session id cookie.
package session

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
)

const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Data is what a Store persists for one session id.
type Data struct {
	Token     string                     `json:"token,omitempty"`
	CSRFToken string                     `json:"csrf_token,omitempty"`
	Flashes   []Flash                    `json:"flashes,omitempty"`
	State     map[string]json.RawMessage `json:"state,omitempty"`
}

type Store interface {
	// Load reports found=false with empty Data for an unknown id.
	Load(ctx context.Context, id string) (data Data, found bool, err error)
	Save(ctx context.Context, id string, data Data) error
	Delete(ctx context.Context, id string) error
}

// changes records which fields a request touched, so a save only writes those.
type changes struct {
	token      bool
	csrf       bool
	flashes    bool
	stateReset bool
	state      map[string]bool
	rotated    bool
}

func (c *changes) any() bool {
	return c.token || c.csrf || c.flashes || c.stateReset || c.rotated || len(c.state) > 0
}

func (c *changes) touchState(key string) {
	if c.state == nil {
		c.state = make(map[string]bool)
	}
	c.state[key] = true
}

// Session is the request scoped view of a stored session.
type Session struct {
	mu      sync.Mutex
	id      string
	data    Data
	changed changes
}

func newSession(id string, data Data) *Session {
	return &Session{id: id, data: data}
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) GetToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	s.changed.token = true
}

// Clear drops the credential and every view state slot. Pending flashes survive
// so a redirect can still explain why the user was logged out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = ""
	s.data.CSRFToken = ""
	s.data.State = nil
	s.changed.token = true
	s.changed.csrf = true
	s.changed.stateReset = true
	s.changed.state = nil
}

func (s *Session) GetCSRFToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CSRFToken
}

func (s *Session) SetCSRFToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CSRFToken = token
	s.changed.csrf = true
}

func (s *Session) AddFlash(level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Flashes = append(s.data.Flashes, Flash{Level: level, Message: message})
	s.changed.flashes = true
}

// Flashes returns and removes the pending flash messages.
func (s *Session) Flashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes := s.data.Flashes
	if len(flashes) > 0 {
		s.data.Flashes = nil
		s.changed.flashes = true
	}
	return flashes
}

// LoadState decodes the slot key into out. It reports false when the slot is empty.
func (s *Session) LoadState(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data.State[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) SaveState(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.State == nil {
		s.data.State = make(map[string]json.RawMessage)
	}
	s.data.State[key] = raw
	s.changed.touchState(key)
	return nil
}

func (s *Session) DropState(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.State[key]; ok {
		delete(s.data.State, key)
		s.changed.touchState(key)
	}
}

// rotate moves the session to id and returns the previous one. The whole
// snapshot is written on the next save since nothing is stored under id yet.
func (s *Session) rotate(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.id
	s.id = id
	s.changed.rotated = true
	return old
}

func (s *Session) dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed.any()
}

func (s *Session) snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// merge applies the fields this request touched on top of base, the copy
// currently in the store. Fields written by a concurrent request survive.
func (s *Session) merge(base Data) Data {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.changed.rotated {
		return s.data
	}
	if s.changed.token {
		base.Token = s.data.Token
	}
	if s.changed.csrf {
		base.CSRFToken = s.data.CSRFToken
	}
	if s.changed.flashes {
		base.Flashes = s.data.Flashes
	}
	if s.changed.stateReset {
		base.State = nil
	}

	state := make(map[string]json.RawMessage, len(base.State)+len(s.changed.state))
	for k, v := range base.State {
		state[k] = v
	}
	for key := range s.changed.state {
		if raw, ok := s.data.State[key]; ok {
			state[key] = raw
		} else {
			delete(state, key)
		}
	}
	if len(state) == 0 {
		state = nil
	}
	base.State = state
	return base
}
