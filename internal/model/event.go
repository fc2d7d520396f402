package model

// ClickEvent is the single input event the core consumes: a target cell
// already resolved to grid space by the external input layer, plus the
// modifier flag indicating multi-select intent.
type ClickEvent struct {
	Target Coord `json:"target"`
	Multi  bool  `json:"multi"`
}
