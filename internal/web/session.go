package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/shell"
)

const (
	keyActiveID = "active_id"
	keyNavOpen  = "nav_open"
)

// SessionOptions configures the visitor session cookie.
type SessionOptions struct {
	Lifetime   time.Duration
	CookieName string
}

// NewSessions creates an in-memory session manager. The cookie is a
// browser-session cookie, so the selection is gone once the browser closes;
// Lifetime only caps how long the server keeps it. State does not survive a
// restart either.
func NewSessions(opts SessionOptions) *scs.SessionManager {
	sm := scs.New()
	if opts.Lifetime > 0 {
		sm.Lifetime = opts.Lifetime
	}
	if opts.CookieName != "" {
		sm.Cookie.Name = opts.CookieName
	}
	sm.Cookie.Persist = false
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// stateStore keeps one SelectionState per visitor session.
type stateStore struct {
	sessions *scs.SessionManager
	initial  catalog.SectionID
}

func (s stateStore) load(ctx context.Context) shell.State {
	if !s.sessions.Exists(ctx, keyActiveID) {
		return shell.New(s.initial)
	}
	return shell.State{
		ActiveID: catalog.SectionID(s.sessions.GetString(ctx, keyActiveID)),
		NavOpen:  s.sessions.GetBool(ctx, keyNavOpen),
	}
}

func (s stateStore) save(ctx context.Context, st shell.State) {
	s.sessions.Put(ctx, keyActiveID, string(st.ActiveID))
	s.sessions.Put(ctx, keyNavOpen, st.NavOpen)
}

// apply runs an intent against the visitor's state and stores the result.
func (s stateStore) apply(ctx context.Context, in shell.Intent) shell.State {
	st := shell.Apply(s.load(ctx), in)
	s.save(ctx, st)
	return st
}

// attach loads the visitor's session for a request that bypasses
// LoadAndSave, such as a websocket upgrade.
func (s stateStore) attach(r *http.Request) (context.Context, error) {
	var token string
	if c, err := r.Cookie(s.sessions.Cookie.Name); err == nil {
		token = c.Value
	}
	ctx, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return ctx, nil
}

// commit saves st into an attached session and writes it to the store.
// It returns the cookie that carries the session token.
func (s stateStore) commit(ctx context.Context, st shell.State) (*http.Cookie, error) {
	s.save(ctx, st)
	token, expiry, err := s.sessions.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("committing session: %w", err)
	}
	c := s.sessions.Cookie
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     c.Path,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
	if c.Persist {
		cookie.Expires = time.Unix(expiry.Unix()+1, 0)
		cookie.MaxAge = int(time.Until(expiry).Seconds() + 1)
	}
	return cookie, nil
}
