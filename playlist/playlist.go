package playlist

import (
	"fmt"
	"strconv"

	"github.com/Strum355/log"

	"MyTube/video"
)

// Playlist stores video ids rather than video references. An id whose video
// no longer exists in the table is skipped at resolve time, not treated as
// an error when it was added.
type Playlist struct {
	Name     string
	videoIDs []int64
}

func New(name string) *Playlist {
	return &Playlist{Name: name}
}

// Add appends a video id. Duplicates are permitted and no existence check is
// made against the video table; the title is only used for the log line.
func (p *Playlist) Add(videoID int64, title string) {
	p.videoIDs = append(p.videoIDs, videoID)
	log.WithFields(log.Fields{
		"playlist": p.Name,
		"video_id": strconv.FormatInt(videoID, 10),
	}).Info(fmt.Sprintf("Added %q to playlist %q", title, p.Name))
}

// VideoIDs returns a snapshot of the stored ids in insertion order.
func (p *Playlist) VideoIDs() []int64 {
	out := make([]int64, len(p.videoIDs))
	copy(out, p.videoIDs)
	return out
}

// Entry is one resolved playlist row. Position is 1-based over the rendered
// entries, so dangling ids never leave gaps in the numbering.
type Entry struct {
	Position int
	Title    string
	VideoID  int64
}

// Resolve looks up each stored id against the video table, silently skipping
// ids with no match, and returns the surviving entries in insertion order.
func (p *Playlist) Resolve(videos map[int64]*video.Video) []Entry {
	entries := []Entry{}
	for _, id := range p.videoIDs {
		v, ok := videos[id]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Position: len(entries) + 1,
			Title:    v.Title,
			VideoID:  v.ID,
		})
	}
	return entries
}
