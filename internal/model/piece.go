package model

// Piece is a unit owned by a player. Moved counts how many times this
// specific piece has been relocated; the double pawn step and castling are
// only available while it is zero.
type Piece struct {
	Unit   Unit   `json:"unit"`
	Player Player `json:"player"`
	Moved  int    `json:"moved"`
}
