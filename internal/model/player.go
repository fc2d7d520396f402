package model

import "fmt"

// Player denotes one of the two sides that can own pieces.
type Player uint8

const (
	White Player = iota
	Black
)

func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid player %q", s)
	}
}

func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
