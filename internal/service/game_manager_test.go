package service

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fogchess/internal/model"
	"fogchess/internal/store"
)

func newTestManager(t *testing.T) *GameManager {
	t.Helper()
	gm, err := NewGameManager(nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return gm
}

func TestCreateGameRejectsUnknownScenario(t *testing.T) {
	gm := newTestManager(t)

	err := gm.CreateGame("g1", model.Config{Scenario: "bogus"})
	if !errors.Is(err, model.ErrUnknownScenario) {
		t.Fatalf("CreateGame error = %v, want ErrUnknownScenario", err)
	}
	if _, err := gm.GetSnapshot("g1"); !errors.Is(err, ErrGameNotFound) {
		t.Error("failed creation left a game behind")
	}
}

func TestCreateGameDuplicateID(t *testing.T) {
	gm := newTestManager(t)

	if err := gm.CreateGame("g1", model.Config{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame("g1", model.Config{}); !errors.Is(err, ErrGameExists) {
		t.Fatalf("duplicate create error = %v, want ErrGameExists", err)
	}
}

func TestGetSnapshotUnknownGame(t *testing.T) {
	gm := newTestManager(t)
	if _, err := gm.GetSnapshot("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("error = %v, want ErrGameNotFound", err)
	}
}

func TestHandleClickDrivesTheGame(t *testing.T) {
	gm := newTestManager(t)
	if err := gm.CreateGame("g1", model.Config{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Unseated game: any caller may drive it.
	if err := gm.HandleClick("g1", "p1", model.ClickEvent{Target: model.Coord{X: 4, Y: 1}, Multi: true}); err != nil {
		t.Fatalf("select click: %v", err)
	}
	if err := gm.HandleClick("g1", "p1", model.ClickEvent{Target: model.Coord{X: 4, Y: 3}}); err != nil {
		t.Fatalf("move click: %v", err)
	}

	snap, err := gm.GetSnapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if p := snap.Board[3][4]; p == nil || p.Unit != model.Pawn {
		t.Errorf("pawn did not arrive at (4,3): %v", p)
	}
	if snap.ToMove != model.Black {
		t.Errorf("toMove = %v, want black", snap.ToMove)
	}
}

func TestSeatedGameEnforcesTurnOrder(t *testing.T) {
	gm := newTestManager(t)
	if err := gm.CreateGame("g1", model.Config{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	white, err := gm.AddPlayerToGame("g1", "alice")
	if err != nil {
		t.Fatalf("seat alice: %v", err)
	}
	if white != model.White {
		t.Fatalf("alice seated as %v, want white", white)
	}
	black, err := gm.AddPlayerToGame("g1", "bob")
	if err != nil {
		t.Fatalf("seat bob: %v", err)
	}
	if black != model.Black {
		t.Fatalf("bob seated as %v, want black", black)
	}
	if _, err := gm.AddPlayerToGame("g1", "carol"); !errors.Is(err, ErrGameFull) {
		t.Fatalf("third seat error = %v, want ErrGameFull", err)
	}

	// Black may not drive White's turn, and strangers may not play at all.
	ev := model.ClickEvent{Target: model.Coord{X: 4, Y: 1}, Multi: true}
	if err := gm.HandleClick("g1", "bob", ev); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("bob's click error = %v, want ErrNotYourTurn", err)
	}
	if err := gm.HandleClick("g1", "carol", ev); !errors.Is(err, ErrNotSeated) {
		t.Errorf("carol's click error = %v, want ErrNotSeated", err)
	}
	if err := gm.HandleClick("g1", "alice", ev); err != nil {
		t.Errorf("alice's click error = %v, want nil", err)
	}
}

func TestResetGame(t *testing.T) {
	gm := newTestManager(t)
	if err := gm.CreateGame("g1", model.Config{Scenario: "castle"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	initial, err := gm.GetSnapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if err := gm.HandleClick("g1", "p1", model.ClickEvent{Target: model.Coord{X: 3, Y: 0}, Multi: true}); err != nil {
		t.Fatalf("click: %v", err)
	}
	if err := gm.ResetGame("g1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap, err := gm.GetSnapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if diff := cmp.Diff(initial, snap); diff != "" {
		t.Errorf("reset snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := newTestManager(t)

	if err := gm.JoinMatchmaking("p1"); err != nil {
		t.Fatalf("join p1: %v", err)
	}
	if _, ok := gm.PollMatch("p1"); ok {
		t.Fatal("p1 matched with nobody else queued")
	}
	if err := gm.JoinMatchmaking("p1"); err == nil {
		t.Fatal("duplicate queue join accepted")
	}

	if err := gm.JoinMatchmaking("p2"); err != nil {
		t.Fatalf("join p2: %v", err)
	}

	id1, ok := gm.PollMatch("p1")
	if !ok {
		t.Fatal("p1 has no match")
	}
	id2, ok := gm.PollMatch("p2")
	if !ok {
		t.Fatal("p2 has no match")
	}
	if id1 != id2 {
		t.Fatalf("players matched into different games: %s vs %s", id1, id2)
	}
	if _, ok := gm.PollMatch("p1"); ok {
		t.Error("match not consumed by poll")
	}

	snap, err := gm.GetSnapshot(id1)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !snap.Fog {
		t.Error("matchmade game does not have fog enabled")
	}
}

func TestManagerPersistsAndRestores(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	gm, err := NewGameManager(st)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := gm.CreateGame("g1", model.Config{Fog: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.HandleClick("g1", "p1", model.ClickEvent{Target: model.Coord{X: 4, Y: 1}, Multi: true}); err != nil {
		t.Fatalf("click: %v", err)
	}
	if err := gm.HandleClick("g1", "p1", model.ClickEvent{Target: model.Coord{X: 4, Y: 3}}); err != nil {
		t.Fatalf("click: %v", err)
	}
	want, err := gm.GetSnapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	st2, err := store.Open(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st2.Close()

	gm2, err := NewGameManager(st2)
	if err != nil {
		t.Fatalf("restored manager: %v", err)
	}
	got, err := gm2.GetSnapshot("g1")
	if err != nil {
		t.Fatalf("restored snapshot: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("restored game mismatch (-want +got):\n%s", diff)
	}
}
