package model

import (
	"fmt"
	"sync"
	"time"
)

// QueuedPlayer is a player waiting to be paired into a game.
type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// Queue holds players waiting for matchmaking, ordered by join time.
type Queue struct {
	mu      sync.Mutex
	players []QueuedPlayer
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Add(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return fmt.Errorf("player %s already in queue", playerID)
		}
	}
	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// NextPair pops the two longest-waiting players. It reports false when
// fewer than two players are queued.
func (q *Queue) NextPair() (string, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return "", "", false
	}
	first, second := q.players[0].PlayerID, q.players[1].PlayerID
	q.players = q.players[2:]
	return first, second, true
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
