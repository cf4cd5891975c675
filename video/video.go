package video

import (
	"fmt"
	"time"

	"MyTube/idgen"
	"MyTube/result"
)

// Comment is a single comment on a video. The id is assigned once at
// creation and never reused, even after the comment is removed.
type Comment struct {
	ID        int64
	Author    string
	Text      string
	Likes     int
	CreatedAt time.Time
}

// Like increments the like count. Repeat likes from the same caller are not
// deduplicated; there is no per-user like tracking.
func (c *Comment) Like() {
	c.Likes++
}

type Video struct {
	ID          int64  // Unique id, immutable after creation
	Title       string // Display title
	Uploader    string // Name of the channel that uploaded this video
	DurationSec int    // Length of the video in seconds
	views       int64  // Total successful play transitions, only increases
	playing     bool   // True while the video is logically playing
	comments    []*Comment
	ids         *idgen.Generator // Shared id source for new comments
}

// New constructs a video. Videos are only ever created through
// Channel.Upload, which supplies the uploader name.
func New(ids *idgen.Generator, title, uploader string, durationSec int) *Video {
	return &Video{
		ID:          ids.Next(),
		Title:       title,
		Uploader:    uploader,
		DurationSec: durationSec,
		ids:         ids,
	}
}

func (v *Video) Views() int64 {
	return v.views
}

func (v *Video) IsPlaying() bool {
	return v.playing
}

// Play transitions the video to playing and counts a view. Calling Play on a
// video that is already playing changes nothing and reports the condition.
func (v *Video) Play() result.Result {
	if v.playing {
		return result.AlreadyExists(fmt.Sprintf("Already playing %q", v.Title))
	}
	v.playing = true
	v.views++
	return result.OK(fmt.Sprintf("Playing %q (views: %d)", v.Title, v.views))
}

// Pause transitions the video out of playing. The view count is never
// touched by a pause.
func (v *Video) Pause() result.Result {
	if !v.playing {
		return result.InvalidInput(fmt.Sprintf("Not playing %q", v.Title))
	}
	v.playing = false
	return result.OK(fmt.Sprintf("Paused %q", v.Title))
}

// AddComment appends a comment and returns its new id. Author existence is
// the caller's concern; this layer accepts any author string.
func (v *Video) AddComment(author, text string) result.Result {
	c := &Comment{
		ID:        v.ids.Next(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
	v.comments = append(v.comments, c)
	return result.OKWithID(fmt.Sprintf("Comment added by %s", author), c.ID)
}

// LikeComment likes the comment with the given id.
func (v *Video) LikeComment(commentID int64) result.Result {
	for _, c := range v.comments {
		if c.ID == commentID {
			c.Like()
			return result.OK(fmt.Sprintf("Liked comment %d (likes=%d)", commentID, c.Likes))
		}
	}
	return result.NotFound("Comment not found")
}

// RemoveComment deletes the comment with the given id. Only the comment's
// author or the owner of the hosting channel may remove it. Removal shifts
// the positions of later comments but never their ids.
func (v *Video) RemoveComment(commentID int64, requester, channelOwner string) result.Result {
	for i, c := range v.comments {
		if c.ID != commentID {
			continue
		}
		if requester != c.Author && requester != channelOwner {
			return result.PermissionDenied("Permission denied")
		}
		v.comments = append(v.comments[:i], v.comments[i+1:]...)
		return result.OK("Comment removed")
	}
	return result.NotFound("Comment not found")
}

// Comments returns a snapshot of the comment list in insertion order.
func (v *Video) Comments() []*Comment {
	out := make([]*Comment, len(v.comments))
	copy(out, v.comments)
	return out
}
