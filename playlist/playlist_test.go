package playlist

import (
	"os"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"

	"MyTube/idgen"
	"MyTube/video"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	os.Exit(m.Run())
}

func TestPlaylist_AddPreservesOrder(t *testing.T) {
	p := New("favs")

	p.Add(3, "three")
	p.Add(1, "one")
	p.Add(2, "two")

	assert.Equal(t, []int64{3, 1, 2}, p.VideoIDs())
}

func TestPlaylist_AddAllowsDuplicates(t *testing.T) {
	p := New("favs")

	p.Add(7, "again")
	p.Add(7, "again")

	assert.Equal(t, []int64{7, 7}, p.VideoIDs())
}

func TestPlaylist_AddSkipsExistenceCheck(t *testing.T) {
	p := New("favs")

	// Ids are weak references; nothing validates them at insert time.
	p.Add(424242, "ghost")

	assert.Equal(t, []int64{424242}, p.VideoIDs())
}

func TestPlaylist_ResolveSkipsDanglingIDs(t *testing.T) {
	gen := idgen.New()
	v1 := video.New(gen, "one", "ch", 10)
	v2 := video.New(gen, "two", "ch", 20)
	v3 := video.New(gen, "three", "ch", 30)

	p := New("favs")
	p.Add(v1.ID, v1.Title)
	p.Add(v2.ID, v2.Title)
	p.Add(v3.ID, v3.Title)

	// v2 is missing from the table: its entry disappears silently.
	table := map[int64]*video.Video{v1.ID: v1, v3.ID: v3}
	entries := p.Resolve(table)

	assert.Equal(t, 2, len(entries))
	assert.Equal(t, v1.ID, entries[0].VideoID)
	assert.Equal(t, v3.ID, entries[1].VideoID)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 2, entries[1].Position)
}

func TestPlaylist_ResolveEmpty(t *testing.T) {
	p := New("favs")

	entries := p.Resolve(map[int64]*video.Video{})

	assert.Empty(t, entries)
}
