package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"fogchess/internal/model"
	"fogchess/internal/store"
)

// GameManager is the registry of live games. It optionally persists every
// accepted event to the store so games survive a restart.
type GameManager struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
	queue    *model.Queue
	matches  map[string]string // playerID -> matched game ID, delivered on poll
	store    *store.Store      // nil disables persistence
}

// NewGameManager builds a manager, restoring any games the store holds.
func NewGameManager(st *store.Store) (*GameManager, error) {
	gm := &GameManager{
		sessions: make(map[string]*GameSession),
		queue:    model.NewQueue(),
		matches:  make(map[string]string),
		store:    st,
	}
	if st == nil {
		return gm, nil
	}

	ids, err := st.GameIDs()
	if err != nil {
		return nil, fmt.Errorf("list stored games: %w", err)
	}
	for _, id := range ids {
		snap, found, err := st.LoadGame(id)
		if err != nil {
			return nil, fmt.Errorf("load game %s: %w", id, err)
		}
		if !found {
			continue
		}
		game, err := model.RestoreGame(snap)
		if err != nil {
			log.Printf("skipping stored game %s: %v", id, err)
			continue
		}
		gm.sessions[id] = NewGameSession(id, game)
	}
	if len(gm.sessions) > 0 {
		log.Printf("restored %d game(s) from store", len(gm.sessions))
	}
	return gm, nil
}

// CreateGame registers a new game under gameID. An unknown scenario name in
// cfg fails the construction.
func (gm *GameManager) CreateGame(gameID string, cfg model.Config) error {
	game, err := model.NewGame(cfg)
	if err != nil {
		return err
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return ErrGameExists
	}
	gm.sessions[gameID] = NewGameSession(gameID, game)
	gm.persist(gameID, game.Snapshot())
	return nil
}

func (gm *GameManager) session(gameID string) (*GameSession, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (gm *GameManager) GetSnapshot(gameID string) (model.Snapshot, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (model.Player, error) {
	s, err := gm.session(gameID)
	if err != nil {
		return model.White, err
	}
	return s.AddPlayer(playerID)
}

// HandleClick routes one input event to the game and persists the outcome.
func (gm *GameManager) HandleClick(gameID, playerID string, ev model.ClickEvent) error {
	s, err := gm.session(gameID)
	if err != nil {
		return err
	}
	snap, err := s.Click(playerID, ev)
	if err != nil {
		return err
	}
	gm.persist(gameID, snap)
	return nil
}

// ResetGame restores the game to its initial scenario snapshot.
func (gm *GameManager) ResetGame(gameID string) error {
	s, err := gm.session(gameID)
	if err != nil {
		return err
	}
	gm.persist(gameID, s.Reset())
	return nil
}

// JoinMatchmaking queues the player and pairs the two longest-waiting
// players into a fresh standard game with fog enabled. Matches are handed
// out by PollMatch.
func (gm *GameManager) JoinMatchmaking(playerID string) error {
	if err := gm.queue.Add(playerID); err != nil {
		return err
	}

	first, second, ok := gm.queue.NextPair()
	if !ok {
		return nil
	}

	gameID := uuid.New().String()
	if err := gm.CreateGame(gameID, model.Config{Fog: true}); err != nil {
		return fmt.Errorf("create matchmaking game: %w", err)
	}
	if _, err := gm.AddPlayerToGame(gameID, first); err != nil {
		return err
	}
	if _, err := gm.AddPlayerToGame(gameID, second); err != nil {
		return err
	}

	gm.mu.Lock()
	gm.matches[first] = gameID
	gm.matches[second] = gameID
	gm.mu.Unlock()
	return nil
}

// PollMatch reports the game the player has been paired into, if any. The
// match is consumed by the poll.
func (gm *GameManager) PollMatch(playerID string) (string, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID, ok := gm.matches[playerID]
	if ok {
		delete(gm.matches, playerID)
	}
	return gameID, ok
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	s, err := gm.session(gameID)
	if err != nil {
		return err
	}
	return s.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	s, err := gm.session(gameID)
	if err != nil {
		return
	}
	s.UnregisterConnection(playerID)
}

// persist writes the snapshot through to the store. Persistence failures
// are logged, not surfaced; the in-memory game stays authoritative.
func (gm *GameManager) persist(gameID string, snap model.Snapshot) {
	if gm.store == nil {
		return
	}
	if err := gm.store.SaveGame(gameID, snap); err != nil {
		log.Printf("persist game %s: %v", gameID, err)
	}
}
