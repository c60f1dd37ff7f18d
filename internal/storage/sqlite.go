// Package storage provides SQLite-based persistence for campaign saves and
// the leaderboard. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-corridor/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LeaderboardEntry represents a single finished-run record.
type LeaderboardEntry struct {
	ID         int64
	Name       string
	Score      int
	LevelIndex int
	Kills      int
	Difficulty string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level_index INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			saved_at DATETIME NOT NULL,
			difficulty TEXT NOT NULL,
			campaign_seed INTEGER NOT NULL,
			level_index INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total_kills INTEGER NOT NULL,
			player_x REAL NOT NULL,
			player_y REAL NOT NULL,
			player_angle REAL NOT NULL,
			health INTEGER NOT NULL,
			checkpoint_index INTEGER NOT NULL,
			level_kills INTEGER NOT NULL,
			achievements INTEGER NOT NULL DEFAULT 0,
			challenges INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SubmitScore records a finished run on the leaderboard.
// Returns the ID of the inserted record.
func (s *Store) SubmitScore(name string, score, levelIndex, kills int, difficulty string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO leaderboard (name, score, level_index, kills, difficulty) VALUES (?, ?, ?, ?, ?)",
		name, score, levelIndex, kills, difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot submit score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N leaderboard entries, ordered by score
// descending.
func (s *Store) TopScores(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level_index, kills, difficulty, created_at
		 FROM leaderboard
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.LevelIndex, &e.Kills, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest leaderboard score, or 0 if the table is empty.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM leaderboard").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearLeaderboard deletes all leaderboard entries.
func (s *Store) ClearLeaderboard() error {
	if _, err := s.db.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}

// PutSave writes a save record under its slot name, replacing any previous
// save in that slot.
func (s *Store) PutSave(rec engine.SaveRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO saves
		 (name, saved_at, difficulty, campaign_seed, level_index, score, total_kills,
		  player_x, player_y, player_angle, health, checkpoint_index, level_kills,
		  achievements, challenges)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   saved_at = excluded.saved_at,
		   difficulty = excluded.difficulty,
		   campaign_seed = excluded.campaign_seed,
		   level_index = excluded.level_index,
		   score = excluded.score,
		   total_kills = excluded.total_kills,
		   player_x = excluded.player_x,
		   player_y = excluded.player_y,
		   player_angle = excluded.player_angle,
		   health = excluded.health,
		   checkpoint_index = excluded.checkpoint_index,
		   level_kills = excluded.level_kills,
		   achievements = excluded.achievements,
		   challenges = excluded.challenges`,
		rec.Name,
		rec.SavedAt.UTC().Format("2006-01-02 15:04:05"),
		rec.Difficulty,
		rec.CampaignSeed,
		rec.LevelIndex,
		rec.Score,
		rec.TotalKills,
		rec.PlayerX,
		rec.PlayerY,
		rec.PlayerAngle,
		rec.Health,
		rec.CheckpointIndex,
		rec.LevelKills,
		packAchievements(rec.Achievements),
		packChallenges(rec.Challenges),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write save %q: %w", rec.Name, err)
	}
	return nil
}

// GetSave loads the save record in the named slot, or nil if the slot is
// empty.
func (s *Store) GetSave(name string) (*engine.SaveRecord, error) {
	row := s.db.QueryRow(
		`SELECT name, saved_at, difficulty, campaign_seed, level_index, score, total_kills,
		        player_x, player_y, player_angle, health, checkpoint_index, level_kills,
		        achievements, challenges
		 FROM saves WHERE name = ?`,
		name,
	)

	rec, err := scanSave(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load save %q: %w", name, err)
	}
	return rec, nil
}

// ListSaves returns all save slots, most recent first.
func (s *Store) ListSaves() ([]engine.SaveRecord, error) {
	rows, err := s.db.Query(
		`SELECT name, saved_at, difficulty, campaign_seed, level_index, score, total_kills,
		        player_x, player_y, player_angle, health, checkpoint_index, level_kills,
		        achievements, challenges
		 FROM saves ORDER BY saved_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var recs []engine.SaveRecord
	for rows.Next() {
		rec, err := scanSave(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan save row: %w", err)
		}
		recs = append(recs, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// DeleteSave removes the named save slot. Deleting an empty slot is not an
// error.
func (s *Store) DeleteSave(name string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	return nil
}

func scanSave(scan func(dest ...any) error) (*engine.SaveRecord, error) {
	var rec engine.SaveRecord
	var savedAt any
	var ach, chal int64

	err := scan(
		&rec.Name,
		&savedAt,
		&rec.Difficulty,
		&rec.CampaignSeed,
		&rec.LevelIndex,
		&rec.Score,
		&rec.TotalKills,
		&rec.PlayerX,
		&rec.PlayerY,
		&rec.PlayerAngle,
		&rec.Health,
		&rec.CheckpointIndex,
		&rec.LevelKills,
		&ach,
		&chal,
	)
	if err != nil {
		return nil, err
	}

	rec.SavedAt = parseTime(savedAt)
	rec.Achievements = unpackAchievements(ach)
	rec.Challenges = unpackChallenges(chal)
	return &rec, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Unlock flags are stored as bitmasks, one bit per flag index. Unknown high
// bits in old databases are dropped on load.

func packAchievements(flags [engine.AchievementCount]bool) int64 {
	var mask int64
	for i, set := range flags {
		if set {
			mask |= 1 << i
		}
	}
	return mask
}

func unpackAchievements(mask int64) [engine.AchievementCount]bool {
	var flags [engine.AchievementCount]bool
	for i := range flags {
		flags[i] = mask&(1<<i) != 0
	}
	return flags
}

func packChallenges(flags [engine.ChallengeCount]bool) int64 {
	var mask int64
	for i, set := range flags {
		if set {
			mask |= 1 << i
		}
	}
	return mask
}

func unpackChallenges(mask int64) [engine.ChallengeCount]bool {
	var flags [engine.ChallengeCount]bool
	for i := range flags {
		flags[i] = mask&(1<<i) != 0
	}
	return flags
}
