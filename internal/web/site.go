// Package web serves LayerMap over HTTP: the main view, the QR screen, a
// JSON API over the catalog and selection state, and a websocket channel
// that re-renders the view on each intent.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/qr"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// Options wires a Site together.
type Options struct {
	Renderer       *Renderer
	Sessions       *scs.SessionManager
	Assets         *Assets
	InitialSection catalog.SectionID
	PublicURL      string
	Logger         *zap.Logger
}

// Site holds the HTTP handlers for LayerMap.
type Site struct {
	renderer  *Renderer
	sessions  *scs.SessionManager
	assets    *Assets
	store     stateStore
	publicURL string
	logger    *zap.Logger
	links     ServerLinks

	qrOnce sync.Once
	qrPNG  []byte
	qrErr  error

	liveViews atomic.Int64
}

// New creates a Site. A nil Sessions gets an in-memory manager with
// defaults; a nil Logger discards logs.
func New(opts Options) *Site {
	if opts.Sessions == nil {
		opts.Sessions = NewSessions(SessionOptions{})
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PublicURL == "" {
		opts.PublicURL = qr.DefaultURL
	}
	return &Site{
		renderer:  opts.Renderer,
		sessions:  opts.Sessions,
		assets:    opts.Assets,
		store:     stateStore{sessions: opts.Sessions, initial: opts.InitialSection},
		publicURL: opts.PublicURL,
		logger:    opts.Logger,
	}
}

// RegisterRoutes mounts all LayerMap routes onto the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(s.sessions.LoadAndSave)
		r.Get("/", s.handleMain)
		r.Get("/select/{id}", s.handleSelect)
		r.Get("/nav/{action}", s.handleNav)
		r.Get("/qr", s.handleQR)
		r.Get("/diagram.svg", s.handleDiagram)
		r.Get("/api/state", s.handleState)
		r.Post("/api/intents", s.handleIntent)
	})

	r.Get("/qr.png", s.handleQRImage)
	r.Get("/api/sections", s.handleSections)
	r.Get("/api/sections/{id}", s.handleSection)
	r.Get("/ws", s.handleLive)
	r.Get("/assets/*", s.assets.serve)
}

// LiveViews returns the number of open websocket views.
func (s *Site) LiveViews() int64 { return s.liveViews.Load() }

func (s *Site) handleMain(w http.ResponseWriter, r *http.Request) {
	st := s.store.load(r.Context())
	if id := r.URL.Query().Get("section"); id != "" {
		st = s.store.apply(r.Context(), shell.Select(catalog.SectionID(id), shell.SourceAPI))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Main(w, st, s.links, true); err != nil {
		s.logger.Error("render main view", zap.Error(err))
	}
}

func (s *Site) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := catalog.SectionID(chi.URLParam(r, "id"))
	src := shell.Source(r.URL.Query().Get("from"))
	if src != shell.SourceDiagram {
		src = shell.SourceNav
	}
	st := s.store.apply(r.Context(), shell.Select(id, src))
	s.logger.Debug("section selected", zap.String("id", string(st.ActiveID)), zap.String("source", string(src)))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

var navIntents = map[string]shell.Intent{
	"open":   shell.OpenNav(),
	"close":  shell.CloseNav(),
	"toggle": shell.ToggleNav(),
}

func (s *Site) handleNav(w http.ResponseWriter, r *http.Request) {
	in, ok := navIntents[chi.URLParam(r, "action")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.store.apply(r.Context(), in)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) handleQR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.QR(w, s.store.load(r.Context()), s.links); err != nil {
		s.logger.Error("render qr view", zap.Error(err))
	}
}

func (s *Site) handleQRImage(w http.ResponseWriter, r *http.Request) {
	s.qrOnce.Do(func() {
		s.qrPNG, s.qrErr = qr.PNG(s.publicURL, qr.DefaultSize)
	})
	if s.qrErr != nil {
		s.logger.Error("encode qr code", zap.Error(s.qrErr))
		http.Error(w, "qr code unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(s.qrPNG)
}

func (s *Site) handleDiagram(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := s.renderer.DiagramSVG(w, s.store.load(r.Context()), s.links); err != nil {
		s.logger.Error("render diagram", zap.Error(err))
	}
}

func (s *Site) handleSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Catalog().All())
}

type notFoundResponse struct {
	Error string            `json:"error"`
	ID    catalog.SectionID `json:"id"`
}

func (s *Site) handleSection(w http.ResponseWriter, r *http.Request) {
	id := catalog.SectionID(chi.URLParam(r, "id"))
	panel := detail.Build(s.renderer.Catalog(), id)
	if !panel.Found {
		writeJSON(w, http.StatusNotFound, notFoundResponse{Error: detail.NotFoundMessage, ID: id})
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (s *Site) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.load(r.Context()))
}

type errorResponse struct {
	Error string `json:"error"`
}

// maxIntentBytes bounds a posted intent body.
const maxIntentBytes = 4 << 10

func (s *Site) handleIntent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIntentBytes)
	var in shell.Intent
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid intent: " + err.Error()})
		return
	}
	if in.Source == "" {
		in.Source = shell.SourceAPI
	}
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.store.apply(r.Context(), in))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
