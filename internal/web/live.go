package web

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/shell"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveMessage is the outgoing websocket message format.
type liveMessage struct {
	Type      string      `json:"type"` // "mounted", "state" or "error"
	ViewID    string      `json:"view_id"`
	State     shell.State `json:"state"`
	Title     string      `json:"title,omitempty"`
	Fragments *Fragments  `json:"fragments,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// handleLive mounts a live view over the visitor's session state, seeded
// from the state the page was rendered with. Intents applied here are saved
// to the session, so plain links afterwards see the same selection.
func (s *Site) handleLive(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.store.attach(r)
	if err != nil {
		s.logger.Error("live view session", zap.Error(err))
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	st := shell.New(catalog.SectionID(q.Get("active")))
	st.NavOpen = q.Get("nav") == "1"

	// The session stays the single owner of the state: the mounted view
	// writes it back before and after every intent.
	cookie, err := s.store.commit(ctx, st)
	if err != nil {
		s.logger.Error("live view session", zap.Error(err))
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	viewID := uuid.NewString()
	s.liveViews.Add(1)
	defer s.liveViews.Add(-1)

	log := s.logger.With(zap.String("view_id", viewID))
	log.Debug("live view mounted", zap.String("active_id", string(st.ActiveID)))
	defer log.Debug("live view closed")

	s.send(conn, log, liveMessage{Type: "mounted", ViewID: viewID, State: st, Title: s.renderer.Title(st)})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var in shell.Intent
		if err := json.Unmarshal(msg, &in); err != nil {
			s.send(conn, log, liveMessage{Type: "error", ViewID: viewID, State: st, Error: "invalid message format"})
			continue
		}
		if err := in.Validate(); err != nil {
			s.send(conn, log, liveMessage{Type: "error", ViewID: viewID, State: st, Error: err.Error()})
			continue
		}

		st = shell.Apply(st, in)
		if _, err := s.store.commit(ctx, st); err != nil {
			log.Error("save live state", zap.Error(err))
			s.send(conn, log, liveMessage{Type: "error", ViewID: viewID, State: st, Error: "state not saved"})
			continue
		}
		frags, err := s.renderer.Fragments(st, s.links)
		if err != nil {
			log.Error("render fragments", zap.Error(err))
			s.send(conn, log, liveMessage{Type: "error", ViewID: viewID, State: st, Error: "render failed"})
			continue
		}
		s.send(conn, log, liveMessage{
			Type:      "state",
			ViewID:    viewID,
			State:     st,
			Title:     s.renderer.Title(st),
			Fragments: &frags,
		})
	}
}

func (s *Site) send(conn *websocket.Conn, log *zap.Logger, msg liveMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Warn("websocket write", zap.Error(err))
	}
}
