// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package hiscore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/environment"
	"github.com/jetsetilly/learningenv/logger"
	"github.com/jetsetilly/learningenv/paths"
)

// Sentinal error returned by RecordEpisode() if the episode has not ended.
const NotTerminal = "hiscore: episode has not ended (%s)"

// Store is a database of finished episodes.
type Store struct {
	db   *sql.DB
	path string
}

var _ environment.Recorder = (*Store)(nil)

// Entry is a single recorded episode.
type Entry struct {
	ID        string
	ROM       string
	Mode      int
	Reward    int
	Frames    int
	CreatedAt time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (mode %d): %d in %d frames", e.ROM, e.Mode, e.Reward, e.Frames)
}

// Open the database at path, creating it if necessary. If path is empty the
// database in the resource directory is used.
func Open(path string) (*Store, error) {
	var err error

	if path == "" {
		path, err = paths.ResourcePath("", paths.HiscoreDatabase)
		if err != nil {
			return nil, curated.Errorf("hiscore: %v", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, curated.Errorf("hiscore: %v", err)
	}

	st := &Store{db: db, path: path}

	if err := st.migrate(); err != nil {
		db.Close()
		return nil, curated.Errorf("hiscore: migration: %v", err)
	}

	return st, nil
}

func (st *Store) migrate() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			rom TEXT NOT NULL,
			mode INTEGER NOT NULL,
			reward INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_best ON episodes(rom, mode, reward DESC);
	`
	_, err := st.db.Exec(schema)
	return err
}

// Close the database.
func (st *Store) Close() error {
	if st.db == nil {
		return nil
	}
	err := st.db.Close()
	st.db = nil
	if err != nil {
		return curated.Errorf("hiscore: %v", err)
	}
	return nil
}

// RecordEpisode implements the environment.Recorder interface. Only episodes
// that have ended can be recorded.
func (st *Store) RecordEpisode(ep environment.Episode) (string, error) {
	if !ep.Terminal {
		return "", curated.Errorf(NotTerminal, ep)
	}

	id := uuid.NewString()
	created := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := st.db.Exec(
		"INSERT INTO episodes (id, rom, mode, reward, frames, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, ep.ROM, ep.Mode, ep.Reward, ep.Frames, created,
	)
	if err != nil {
		return "", curated.Errorf("hiscore: %v", err)
	}

	logger.Logf(logger.Allow, "hiscore", "%s recorded as %s", ep, id)

	return id, nil
}

// Best returns the episodes with the highest reward for the game and mode,
// best first. Episodes with equal reward are ordered by the number of frames.
// A limit of zero or less returns every episode.
func (st *Store) Best(rom string, mode int, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := st.db.Query(
		`SELECT id, rom, mode, reward, frames, created_at
		 FROM episodes
		 WHERE rom = ? AND mode = ?
		 ORDER BY reward DESC, frames ASC
		 LIMIT ?`,
		rom, mode, limit,
	)
	if err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.ROM, &e.Mode, &e.Reward, &e.Frames, &created); err != nil {
			return nil, curated.Errorf("hiscore: %v", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, curated.Errorf("hiscore: %s: %v", e.ID, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}

	return entries, nil
}
