package puzzle

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newScrambledSession returns a level 1 session whose grid is solved except
// for slots 0 and 1, which are swapped
func newScrambledSession(t *testing.T) *Session {
	t.Helper()

	grid := newTestGrid(t, 3, 3)
	if err := grid.Swap(0, 1); err != nil {
		t.Fatal(err)
	}
	return NewSession(grid, "alice", 1, epoch)
}

func TestNewSession(t *testing.T) {
	session := newScrambledSession(t)

	if session.Outcome() != InProgress {
		t.Errorf("Outcome() = %v, want in progress", session.Outcome())
	}
	if session.MoveLimit() != 50 || session.TimeLimit() != 60*time.Second {
		t.Errorf("limits = %d moves / %v, want 50 / 60s", session.MoveLimit(), session.TimeLimit())
	}
	if session.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", session.Moves())
	}
	if _, ok := session.Selected(); ok {
		t.Error("new session should have no selection")
	}
	if session.PlayerName() != "alice" || session.Level() != 1 || !session.Started().Equal(epoch) {
		t.Error("session did not keep player, level or start time")
	}
}

func TestSelectTileSelectAndToggle(t *testing.T) {
	session := newScrambledSession(t)

	if err := session.SelectTile(4); err != nil {
		t.Fatal(err)
	}
	if idx, ok := session.Selected(); !ok || idx != 4 {
		t.Fatalf("Selected() = %d, %v, want 4, true", idx, ok)
	}

	if err := session.SelectTile(4); err != nil {
		t.Fatal(err)
	}
	if _, ok := session.Selected(); ok {
		t.Error("selecting the selected tile again should clear the selection")
	}
	if session.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0 after toggling", session.Moves())
	}
}

func TestSelectTileSwapCountsMove(t *testing.T) {
	session := newScrambledSession(t)
	tile2, tile5 := session.Grid().Tile(2), session.Grid().Tile(5)

	_ = session.SelectTile(2)
	if err := session.SelectTile(5); err != nil {
		t.Fatal(err)
	}

	if session.Grid().Tile(2) != tile5 || session.Grid().Tile(5) != tile2 {
		t.Error("tiles 2 and 5 were not swapped")
	}
	if session.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", session.Moves())
	}
	if _, ok := session.Selected(); ok {
		t.Error("selection should clear after a swap")
	}
	if session.Outcome() != InProgress {
		t.Errorf("Outcome() = %v, want in progress", session.Outcome())
	}
}

func TestSelectTileCompletesPuzzle(t *testing.T) {
	session := newScrambledSession(t)

	_ = session.SelectTile(1)
	_ = session.SelectTile(0)

	if session.Outcome() != Won {
		t.Fatalf("Outcome() = %v, want won", session.Outcome())
	}
	if session.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", session.Moves())
	}
}

func TestSelectTileWinningOnLastMove(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	_ = grid.Swap(0, 1)
	_ = grid.Swap(2, 3)
	session := NewSession(grid, "alice", 1, epoch)

	// An even number of swaps of two correct tiles changes nothing
	for i := 0; i < 48; i++ {
		_ = session.SelectTile(4)
		_ = session.SelectTile(5)
	}
	if session.Outcome() != InProgress || session.Moves() != 48 {
		t.Fatalf("after 48 moves: %v, %d moves", session.Outcome(), session.Moves())
	}

	_ = session.SelectTile(2)
	_ = session.SelectTile(3)
	_ = session.SelectTile(0)
	_ = session.SelectTile(1)

	if session.Outcome() != Won {
		t.Errorf("Outcome() = %v, want won when the last allowed move solves the grid", session.Outcome())
	}
	if session.Moves() != 50 {
		t.Errorf("Moves() = %d, want 50", session.Moves())
	}
}

func TestSelectTileMoveLimitExceeded(t *testing.T) {
	session := newScrambledSession(t)

	for i := 0; i < session.MoveLimit(); i++ {
		if session.Outcome() != InProgress {
			t.Fatalf("session ended after %d moves", i)
		}
		_ = session.SelectTile(2)
		_ = session.SelectTile(3)
	}

	if session.Outcome() != MoveLimitExceeded {
		t.Fatalf("Outcome() = %v, want move limit exceeded", session.Outcome())
	}
	if session.Moves() != session.MoveLimit() {
		t.Errorf("Moves() = %d, want %d", session.Moves(), session.MoveLimit())
	}

	before := session.Grid().Tiles()
	_ = session.SelectTile(0)
	_ = session.SelectTile(1)

	if session.Outcome() != MoveLimitExceeded || session.Moves() != session.MoveLimit() {
		t.Errorf("selection after the limit changed the session: %v, %d moves", session.Outcome(), session.Moves())
	}
	for i, tile := range session.Grid().Tiles() {
		if tile != before[i] {
			t.Fatalf("selection after the limit moved slot %d", i)
		}
	}
	if _, ok := session.Selected(); ok {
		t.Error("selection after the limit should be ignored")
	}
}

func TestSelectTileOutOfRange(t *testing.T) {
	session := newScrambledSession(t)

	for _, idx := range []int{-1, 9, 100} {
		if err := session.SelectTile(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SelectTile(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if _, ok := session.Selected(); ok {
		t.Error("invalid selection should not select anything")
	}
}

func TestTickTimesOut(t *testing.T) {
	session := newScrambledSession(t)
	_ = session.SelectTile(1)

	session.Tick(epoch.Add(59 * time.Second))
	if session.Outcome() != InProgress {
		t.Fatalf("Outcome() = %v before the limit", session.Outcome())
	}
	if got := session.RemainingSeconds(epoch.Add(59 * time.Second)); got != 1 {
		t.Errorf("RemainingSeconds() = %v, want 1", got)
	}

	session.Tick(epoch.Add(60 * time.Second))
	if session.Outcome() != TimedOut {
		t.Fatalf("Outcome() = %v, want timed out", session.Outcome())
	}

	// This swap would solve the grid
	_ = session.SelectTile(1)
	_ = session.SelectTile(0)

	if session.Outcome() != TimedOut {
		t.Errorf("Outcome() = %v, want to stay timed out", session.Outcome())
	}
	if session.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", session.Moves())
	}
	if session.Grid().IsComplete() {
		t.Error("grid changed after timing out")
	}
}

func TestTickDoesNotOverrideWin(t *testing.T) {
	session := newScrambledSession(t)
	_ = session.SelectTile(0)
	_ = session.SelectTile(1)

	session.Tick(epoch.Add(time.Hour))
	if session.Outcome() != Won {
		t.Errorf("Outcome() = %v, want won", session.Outcome())
	}
}

func TestRemaining(t *testing.T) {
	session := newScrambledSession(t)

	tests := []struct {
		elapsed time.Duration
		want    time.Duration
	}{
		{0, 60 * time.Second},
		{15500 * time.Millisecond, 44500 * time.Millisecond},
		{60 * time.Second, 0},
		{5 * time.Minute, 0},
	}

	for _, tt := range tests {
		if got := session.Remaining(epoch.Add(tt.elapsed)); got != tt.want {
			t.Errorf("Remaining(+%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if Won.String() != "won" || MoveLimitExceeded.String() != "move limit exceeded" || Outcome(99).String() != "unknown" {
		t.Error("unexpected outcome names")
	}
	if InProgress.IsTerminal() || !TimedOut.IsTerminal() {
		t.Error("IsTerminal() wrong")
	}
}
