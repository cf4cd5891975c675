package commands

import (
	"context"

	"MyTube/store"
	"MyTube/utils"
)

// createChannel creates a channel owned by the current user.
func createChannel(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Channel name: ")
	if err != nil {
		return &commandError{err, "Failed to read channel name"}
	}
	description, err := c.ReadLine("Description: ")
	if err != nil {
		return &commandError{err, "Failed to read description"}
	}
	res := st.CreateChannel(name, description)
	c.Printf("%s\n", res.Message)
	return nil
}

// uploadVideo uploads a new video to a channel the current user owns.
func uploadVideo(ctx context.Context, st *store.Store, c *Console) *commandError {
	channelName, err := c.ReadLine("Your channel name: ")
	if err != nil {
		return &commandError{err, "Failed to read channel name"}
	}
	title, err := c.ReadLine("Video title: ")
	if err != nil {
		return &commandError{err, "Failed to read video title"}
	}
	duration, err := c.ReadInt("Duration seconds: ")
	if err != nil {
		return &commandError{err, "Failed to read duration"}
	}
	res := st.Upload(channelName, title, duration)
	c.Printf("%s\n", res.Message)
	return nil
}

// listChannelUploads dumps a channel's videos in upload order.
func listChannelUploads(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Channel name: ")
	if err != nil {
		return &commandError{err, "Failed to read channel name"}
	}
	uploads, res := st.ChannelUploads(name)
	if !res.IsOK() {
		c.Printf("%s\n", res.Message)
		return nil
	}
	if len(uploads) == 0 {
		c.Printf("No uploads\n")
		return nil
	}
	c.Printf("%s:\n", res.Message)
	for _, v := range uploads {
		c.Printf("  [%d] %s (%s, views: %d)\n", v.ID, v.Title, utils.FormatDuration(v.DurationSec), v.Views())
	}
	return nil
}
