package commands

import (
	"context"

	"MyTube/store"
	"MyTube/utils"
)

// watchVideo plays a video by id, through the current user when logged in.
func watchVideo(ctx context.Context, st *store.Store, c *Console) *commandError {
	id, err := c.ReadInt64("Video id to watch: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	res := st.Watch(id)
	c.Printf("%s\n", res.Message)
	return nil
}

// addComment comments on a video as the current user.
func addComment(ctx context.Context, st *store.Store, c *Console) *commandError {
	id, err := c.ReadInt64("Video id to comment on: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	text, err := c.ReadLine("Comment text: ")
	if err != nil {
		return &commandError{err, "Failed to read comment text"}
	}
	res := st.AddComment(id, text)
	if res.IsOK() {
		c.Printf("%s (id=%d)\n", res.Message, res.ID)
	} else {
		c.Printf("%s\n", res.Message)
	}
	return nil
}

// likeComment likes a comment on a video.
func likeComment(ctx context.Context, st *store.Store, c *Console) *commandError {
	videoID, err := c.ReadInt64("Video id: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	commentID, err := c.ReadInt64("Comment id to like: ")
	if err != nil {
		return &commandError{err, "Failed to read comment id"}
	}
	res := st.LikeComment(videoID, commentID)
	c.Printf("%s\n", res.Message)
	return nil
}

// removeComment removes a comment, permission-checked against the author
// and the hosting channel's owner.
func removeComment(ctx context.Context, st *store.Store, c *Console) *commandError {
	videoID, err := c.ReadInt64("Video id: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	commentID, err := c.ReadInt64("Comment id to remove: ")
	if err != nil {
		return &commandError{err, "Failed to read comment id"}
	}
	res := st.RemoveComment(videoID, commentID)
	c.Printf("%s\n", res.Message)
	return nil
}

// listComments dumps a video's comments in insertion order.
func listComments(ctx context.Context, st *store.Store, c *Console) *commandError {
	id, err := c.ReadInt64("Video id to list comments: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	comments, res := st.ListComments(id)
	if !res.IsOK() {
		c.Printf("%s\n", res.Message)
		return nil
	}
	if len(comments) == 0 {
		c.Printf("No comments\n")
		return nil
	}
	c.Printf("%s:\n", res.Message)
	for _, comment := range comments {
		c.Printf("  [%d] %s (%d likes): %s\n", comment.ID, comment.Author, comment.Likes, comment.Text)
	}
	return nil
}

// searchVideos matches the query against all titles, case-insensitively.
func searchVideos(ctx context.Context, st *store.Store, c *Console) *commandError {
	query, err := c.ReadLine("Search keyword: ")
	if err != nil {
		return &commandError{err, "Failed to read search keyword"}
	}
	c.Printf("Results:\n")
	for _, v := range st.Search(query) {
		c.Printf("  [%d] %s (channel: %s)\n", v.ID, v.Title, v.Uploader)
	}
	return nil
}

// listVideos dumps the whole video table.
func listVideos(ctx context.Context, st *store.Store, c *Console) *commandError {
	c.Printf("All videos:\n")
	for _, v := range st.AllVideos() {
		c.Printf("  [%d] %s (channel: %s, %s, views: %d)\n",
			v.ID, v.Title, v.Uploader, utils.FormatDuration(v.DurationSec), v.Views())
	}
	return nil
}
