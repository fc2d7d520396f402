package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"fogchess/internal/model"
	"fogchess/internal/ws"
)

// GameSession owns a single game's rules core and its observers. The mutex
// serializes events into the core, which is otherwise free of locking.
type GameSession struct {
	ID string

	mu    sync.Mutex
	game  *model.Game
	white string // player IDs; empty while the seat is open
	black string

	connMu sync.RWMutex
	conns  map[string]*websocket.Conn // playerID -> connection
}

func NewGameSession(id string, game *model.Game) *GameSession {
	return &GameSession{
		ID:    id,
		game:  game,
		conns: make(map[string]*websocket.Conn),
	}
}

// AddPlayer seats the player in the first open seat and returns the
// assigned color.
func (s *GameSession) AddPlayer(playerID string) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.white == "" || s.white == playerID:
		s.white = playerID
		return model.White, nil
	case s.black == "" || s.black == playerID:
		s.black = playerID
		return model.Black, nil
	default:
		return model.White, ErrGameFull
	}
}

// Snapshot returns the current renderer-facing state.
func (s *GameSession) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Click feeds one input event into the rules core and returns the resulting
// snapshot. Illegal clicks are ignored by the core, so the returned error
// only covers seat authorization; the snapshot is returned either way so the
// caller can persist and broadcast.
func (s *GameSession) Click(playerID string, ev model.ClickEvent) (model.Snapshot, error) {
	s.mu.Lock()
	if err := s.authorizeMove(playerID); err != nil {
		s.mu.Unlock()
		return model.Snapshot{}, err
	}
	s.game.Select(ev.Target, ev.Multi)
	snap := s.game.Snapshot()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap, nil
}

// Reset returns the game to its initial scenario snapshot.
func (s *GameSession) Reset() model.Snapshot {
	s.mu.Lock()
	s.game.Reset()
	snap := s.game.Snapshot()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap
}

// authorizeMove requires the seated player whose color is to move, once any
// seat is taken. Unseated (locally driven or single-player) games accept
// events from anyone holding the game ID. Callers hold s.mu.
func (s *GameSession) authorizeMove(playerID string) error {
	if s.white == "" && s.black == "" {
		return nil
	}
	if s.game.SinglePlayer() {
		if playerID != s.white && playerID != s.black {
			return ErrNotSeated
		}
		return nil
	}
	var seat model.Player
	switch playerID {
	case s.white:
		seat = model.White
	case s.black:
		seat = model.Black
	default:
		return ErrNotSeated
	}
	if seat != s.game.Turn() {
		return ErrNotYourTurn
	}
	return nil
}

// RegisterConnection attaches a websocket to this game. Seated players and
// spectators of games with an open seat are admitted; a duplicate
// connection for the same player is rejected in favor of the existing one.
func (s *GameSession) RegisterConnection(playerID string, conn *websocket.Conn) error {
	s.mu.Lock()
	seated := playerID == s.white || playerID == s.black
	openSeat := s.white == "" || s.black == ""
	snap := s.game.Snapshot()
	s.mu.Unlock()

	if !seated && !openSeat {
		return ErrNotAuthorized
	}

	s.connMu.Lock()
	if _, exists := s.conns[playerID]; exists {
		s.connMu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.conns[playerID] = conn
	s.connMu.Unlock()

	s.broadcast(snap)
	return nil
}

func (s *GameSession) UnregisterConnection(playerID string) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	delete(s.conns, playerID)
}

// broadcast pushes the snapshot to every registered connection, dropping
// connections that fail to write.
func (s *GameSession) broadcast(snap model.Snapshot) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("game %s: marshal state: %v", s.ID, err)
		return
	}
	for playerID, conn := range s.conns {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: payload,
		}); err != nil {
			log.Printf("game %s: send state to %s: %v", s.ID, playerID, err)
			delete(s.conns, playerID)
		}
	}
}
