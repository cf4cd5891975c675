package commands

import (
	"context"

	"MyTube/store"
)

// createPlaylist creates an empty playlist for the current user.
func createPlaylist(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Playlist name: ")
	if err != nil {
		return &commandError{err, "Failed to read playlist name"}
	}
	res := st.CreatePlaylist(name)
	c.Printf("%s\n", res.Message)
	return nil
}

// addToPlaylist appends a video id to one of the current user's playlists.
func addToPlaylist(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Playlist name: ")
	if err != nil {
		return &commandError{err, "Failed to read playlist name"}
	}
	id, err := c.ReadInt64("Video id to add: ")
	if err != nil {
		return &commandError{err, "Failed to read video id"}
	}
	res := st.AddToPlaylist(name, id)
	c.Printf("%s\n", res.Message)
	return nil
}

// playPlaylist resolves and plays a playlist entry by entry. Ids whose
// videos no longer exist are skipped from the listing.
func playPlaylist(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Playlist name: ")
	if err != nil {
		return &commandError{err, "Failed to read playlist name"}
	}
	entries, res := st.PlayPlaylist(name)
	if !res.IsOK() {
		c.Printf("%s\n", res.Message)
		return nil
	}
	c.Printf("Playlist: %s\n", name)
	if len(entries) == 0 {
		c.Printf("  (empty)\n")
	}
	for _, e := range entries {
		c.Printf("  [%d] %s (id=%d)\n", e.Position, e.Title, e.VideoID)
	}
	c.Printf("%s\n", res.Message)
	return nil
}
