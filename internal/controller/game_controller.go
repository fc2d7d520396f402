package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fogchess/internal/model"
	"fogchess/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGame builds a game from the posted configuration. The body is
// optional; an empty body means the standard layout with fog on.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	cfg := model.Config{Fog: true}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&cfg); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid game configuration",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(cfg)
	if err != nil {
		if errors.Is(err, model.ErrUnknownScenario) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	snap, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.ResetGame(gameID); err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game reset",
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if gameID, ok := gc.gameService.PollMatch(playerID); ok {
		return c.JSON(fiber.Map{
			"status":  "matched",
			"game_id": gameID,
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// PollMatchmaking reports whether the player has been paired since joining
// the queue.
func (gc *GameController) PollMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if gameID, ok := gc.gameService.PollMatch(playerID); ok {
		return c.JSON(fiber.Map{
			"status":  "matched",
			"game_id": gameID,
		})
	}
	return c.JSON(fiber.Map{
		"status": "waiting",
	})
}

func statusForError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrGameFull):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrNotSeated),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrNotAuthorized):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
