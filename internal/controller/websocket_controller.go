package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"fogchess/internal/model"
	"fogchess/internal/service"
	"fogchess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection runs the read loop for one websocket connection. The
// connection receives a state snapshot on registration and after every
// accepted event.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message: %v", err)
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeClick:
		var ev model.ClickEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return err
		}
		return wsc.gameService.HandleClick(gameID, playerID, ev)

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(wsError{Error: errorMsg})
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	}); err != nil {
		log.Printf("send error: %v", err)
	}
}

type wsError struct {
	Error string `json:"error"`
}
