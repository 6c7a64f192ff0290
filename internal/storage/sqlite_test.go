package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, e ScoreEntry) {
	t.Helper()
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{GameID: "pang", Score: 100, Level: 2, EndReason: "time up"})
	save(t, store, ScoreEntry{GameID: "pang", Score: 50, Level: 1})
	save(t, store, ScoreEntry{GameID: "pang", Score: 200, Level: 4, EndReason: "no players left"})

	// Different game
	save(t, store, ScoreEntry{GameID: "pang_coop", Player: 2, Score: 500, Level: 3})

	scores, err := store.TopScores("pang", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 4 || scores[0].EndReason != "no players left" {
		t.Errorf("top entry = %+v, want level 4 ended by no players left", scores[0])
	}
	if scores[0].Player != 1 {
		t.Errorf("zero seat should be stored as 1, got %d", scores[0].Player)
	}

	coop, err := store.TopScores("pang_coop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(coop) != 1 || coop[0].Player != 2 {
		t.Errorf("coop scores = %+v, want one entry for seat 2", coop)
	}
}

func TestStoreZeroLevelStoredAsOne(t *testing.T) {
	store := openTestStore(t)
	save(t, store, ScoreEntry{GameID: "pang", Score: 7})

	scores, err := store.TopScores("pang", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("scores = %+v, want level 1", scores)
	}
}

func TestStoreTopScoresTieBreaksOnLevel(t *testing.T) {
	store := openTestStore(t)
	save(t, store, ScoreEntry{GameID: "pang", Score: 30, Level: 1})
	save(t, store, ScoreEntry{GameID: "pang", Score: 30, Level: 3})

	scores, err := store.TopScores("pang", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 3 {
		t.Errorf("tie should rank deeper level first, got level %d", scores[0].Level)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		save(t, store, ScoreEntry{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pang")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		save(t, store, ScoreEntry{GameID: "pang", Score: s})
	}

	high, err = store.HighScore("pang")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreEntry{GameID: "pang", Score: 100})
	save(t, store, ScoreEntry{GameID: "pang", Score: 200})
	save(t, store, ScoreEntry{GameID: "pang_coop", Score: 300})

	if err := store.ClearScores("pang"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	solo, _ := store.TopScores("pang", 10)
	if len(solo) != 0 {
		t.Errorf("Expected 0 solo scores after clear, got %d", len(solo))
	}

	coop, _ := store.TopScores("pang_coop", 10)
	if len(coop) != 1 {
		t.Errorf("Co-op scores should not be affected by clearing solo")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pang")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, ScoreEntry{GameID: "pang", Score: 10, Level: 1})
	save(t, store, ScoreEntry{GameID: "pang", Score: 30, Level: 4})
	save(t, store, ScoreEntry{GameID: "pang_coop", Score: 5, Level: 2})

	stats, err := store.GetGameStats("pang")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 4 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["pang_coop"].BestLevel != 2 {
		t.Errorf("coop best level = %d, want 2", all["pang_coop"].BestLevel)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestOpenUpgradesPlainScoresTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	// A scores table that only has game_id and score, with one old result.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX idx_scores_game_id ON scores(game_id);
		INSERT INTO scores (game_id, score) VALUES ('pang', 7);
	`)
	db.Close()
	if err != nil {
		t.Fatalf("seeding old schema: %v", err)
	}

	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		store.Close()
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	save(t, store, ScoreEntry{GameID: "pang", Player: 2, Score: 12, Level: 3, EndReason: "time up"})

	scores, err := store.TopScores("pang", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if s := scores[0]; s.Score != 12 || s.Player != 2 || s.Level != 3 || s.EndReason != "time up" {
		t.Errorf("new entry = %+v", s)
	}
	if s := scores[1]; s.Score != 7 || s.Player != 1 || s.Level != 1 || s.EndReason != "" {
		t.Errorf("old entry = %+v, want defaults for the added columns", s)
	}

	stats, err := store.GetGameStats("pang")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGetBreakdown(t *testing.T) {
	store := openTestStore(t)
	for _, e := range []ScoreEntry{
		{GameID: "pang", Score: 5, Level: 1, EndReason: "time up"},
		{GameID: "pang", Score: 9, Level: 2, EndReason: "time up"},
		{GameID: "pang", Score: 4, Level: 2, EndReason: "no players left"},
		{GameID: "pang_coop", Score: 30, Level: 5, EndReason: "time up"},
	} {
		save(t, store, e)
	}

	b, err := store.GetBreakdown("pang")
	if err != nil {
		t.Fatalf("GetBreakdown() failed: %v", err)
	}
	if len(b.ByLevel) != 2 || b.ByLevel[1] != 1 || b.ByLevel[2] != 2 {
		t.Errorf("ByLevel = %v", b.ByLevel)
	}
	if len(b.ByReason) != 2 || b.ByReason["time up"] != 2 || b.ByReason["no players left"] != 1 {
		t.Errorf("ByReason = %v", b.ByReason)
	}

	empty, err := store.GetBreakdown("nope")
	if err != nil {
		t.Fatalf("GetBreakdown() failed: %v", err)
	}
	if len(empty.ByLevel) != 0 || len(empty.ByReason) != 0 {
		t.Errorf("unknown game breakdown = %+v", empty)
	}
}

func TestSeatTopScores(t *testing.T) {
	store := openTestStore(t)
	for _, e := range []ScoreEntry{
		{GameID: "pang_coop", Player: 1, Score: 10},
		{GameID: "pang_coop", Player: 2, Score: 30},
		{GameID: "pang_coop", Player: 2, Score: 20},
	} {
		save(t, store, e)
	}

	tests := []struct {
		seat int
		want []int
	}{
		{0, []int{30, 20, 10}},
		{1, []int{10}},
		{2, []int{30, 20}},
		{3, nil},
	}
	for _, tt := range tests {
		scores, err := store.SeatTopScores("pang_coop", tt.seat, 10)
		if err != nil {
			t.Fatalf("SeatTopScores(%d) failed: %v", tt.seat, err)
		}
		if len(scores) != len(tt.want) {
			t.Errorf("seat %d: got %d scores, want %d", tt.seat, len(scores), len(tt.want))
			continue
		}
		for i, s := range scores {
			if s.Score != tt.want[i] {
				t.Errorf("seat %d, rank %d: score %d, want %d", tt.seat, i+1, s.Score, tt.want[i])
			}
		}
	}
}
