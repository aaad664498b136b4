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

package hiscore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/environment"
	"github.com/jetsetilly/learningenv/hiscore"
	"github.com/jetsetilly/learningenv/test"
)

func TestRecord(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "db", "hiscore.db")

	st, err := hiscore.Open(fn)
	test.DemandSuccess(t, err)
	defer st.Close()

	// episodes that have not ended are refused
	_, err = st.RecordEpisode(environment.Episode{ROM: "skiing", Mode: 1, Reward: -100})
	test.ExpectSuccess(t, curated.Is(err, hiscore.NotTerminal))

	for _, ep := range []environment.Episode{
		{ROM: "skiing", Mode: 1, Reward: -5000, Frames: 3000, Terminal: true},
		{ROM: "skiing", Mode: 1, Reward: -4000, Frames: 2400, Terminal: true},
		{ROM: "skiing", Mode: 1, Reward: -4000, Frames: 2300, Terminal: true},
		{ROM: "skiing", Mode: 2, Reward: -100, Frames: 60, Terminal: true},
		{ROM: "pitfall", Mode: 1, Reward: 2000, Frames: 60, Terminal: true},
	} {
		id, err := st.RecordEpisode(ep)
		test.DemandSuccess(t, err)
		_, err = uuid.Parse(id)
		test.ExpectSuccess(t, err)
	}

	best, err := st.Best("skiing", 1, 2)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(best), 2)
	test.ExpectEquality(t, best[0].Reward, -4000)
	test.ExpectEquality(t, best[0].Frames, 2300)
	test.ExpectEquality(t, best[1].Reward, -4000)
	test.ExpectEquality(t, best[1].Frames, 2400)
	test.ExpectInequality(t, best[0].ID, best[1].ID)
	test.ExpectEquality(t, best[0].String(), "skiing (mode 1): -4000 in 2300 frames")
	test.ExpectFailure(t, best[0].CreatedAt.IsZero())

	best, err = st.Best("skiing", 1, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(best), 3)
	test.ExpectEquality(t, best[2].Reward, -5000)

	best, err = st.Best("skiing", 3, 10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(best), 0)
}

func TestReopen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hiscore.db")

	st, err := hiscore.Open(fn)
	test.DemandSuccess(t, err)
	id, err := st.RecordEpisode(environment.Episode{ROM: "skiing", Mode: 4, Reward: -3000, Frames: 1800, Terminal: true})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Close())

	// closing twice is not an error
	test.ExpectSuccess(t, st.Close())

	st, err = hiscore.Open(fn)
	test.DemandSuccess(t, err)
	defer st.Close()

	best, err := st.Best("skiing", 4, 1)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(best), 1)
	test.ExpectEquality(t, best[0].ID, id)
}

func TestPreferences(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "preferences.yaml")
	db := filepath.Join(dir, "scores", "skiing.db")

	p, err := hiscore.LoadPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.String(), "")
	test.DemandSuccess(t, p.Database.Set(db))
	test.DemandSuccess(t, p.Save())

	p, err = hiscore.LoadPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Database.Get().(string), db)

	st, err := hiscore.OpenFromPreferences(p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Close())

	_, err = os.Stat(db)
	test.ExpectSuccess(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".learningenv", 0o700))

	st, err := hiscore.Open("")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Close())

	_, err = os.Stat(filepath.Join(".learningenv", "hiscore.db"))
	test.ExpectSuccess(t, err)
}
