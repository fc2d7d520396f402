package ws

import (
	"encoding/json"
)

// MessageType represents the kinds of messages exchanged over a game's
// websocket.
type MessageType string

const (
	// MessageTypeClick carries a model.ClickEvent from the input layer.
	MessageTypeClick MessageType = "click"
	// MessageTypeReset asks the game to return to its initial snapshot.
	MessageTypeReset MessageType = "reset"
	// MessageTypeGameState carries a model.Snapshot to renderers.
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
