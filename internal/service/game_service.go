package service

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"fogchess/internal/model"
)

// GameService is the thin API surface the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

// CreateGame mints a game ID and registers a game built from cfg.
func (gs *GameService) CreateGame(cfg model.Config) (string, error) {
	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, cfg); err != nil {
		return "", err
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID string) (model.Player, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetSnapshot(gameID)
}

func (gs *GameService) HandleClick(gameID, playerID string, ev model.ClickEvent) error {
	return gs.gameManager.HandleClick(gameID, playerID, ev)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) PollMatch(playerID string) (string, bool) {
	return gs.gameManager.PollMatch(playerID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
