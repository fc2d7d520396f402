package model

// Selection is the duplicate-free set of coordinates currently marked by the
// player to move. Insertion order is preserved so the castle resolver can
// take the first two members; membership is keyed structurally so the same
// cell can never appear twice.
type Selection struct {
	order   []Coord
	members map[Coord]struct{}
}

func (s *Selection) Add(c Coord) {
	if s.members == nil {
		s.members = make(map[Coord]struct{})
	}
	if _, ok := s.members[c]; ok {
		return
	}
	s.members[c] = struct{}{}
	s.order = append(s.order, c)
}

// Replace resets the selection to the single coordinate c.
func (s *Selection) Replace(c Coord) {
	s.Clear()
	s.Add(c)
}

func (s *Selection) Clear() {
	s.order = nil
	s.members = nil
}

func (s *Selection) Contains(c Coord) bool {
	_, ok := s.members[c]
	return ok
}

func (s *Selection) Len() int { return len(s.order) }

// First returns the earliest selected coordinate, if any.
func (s *Selection) First() (Coord, bool) {
	if len(s.order) == 0 {
		return Coord{}, false
	}
	return s.order[0], true
}

// FirstTwo returns the two earliest selected coordinates. Members beyond the
// first two are ignored by compound-move resolution.
func (s *Selection) FirstTwo() (Coord, Coord, bool) {
	if len(s.order) < 2 {
		return Coord{}, Coord{}, false
	}
	return s.order[0], s.order[1], true
}

// Coords returns the selected coordinates in insertion order. The slice is a
// copy; mutating it does not affect the selection.
func (s *Selection) Coords() []Coord {
	out := make([]Coord, len(s.order))
	copy(out, s.order)
	return out
}
