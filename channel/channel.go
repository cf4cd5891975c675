package channel

import (
	"fmt"
	"strconv"

	"github.com/Strum355/log"

	"MyTube/idgen"
	"MyTube/result"
	"MyTube/video"
)

// Channel owns the videos uploaded to it for their whole lifetime. Name and
// Owner are fixed at creation; there is no channel transfer.
type Channel struct {
	Name        string
	Owner       string
	Description string
	uploads     []*video.Video
	subscribers map[string]struct{}
	ids         *idgen.Generator
}

func New(ids *idgen.Generator, name, owner, description string) *Channel {
	return &Channel{
		Name:        name,
		Owner:       owner,
		Description: description,
		subscribers: map[string]struct{}{},
		ids:         ids,
	}
}

// Upload creates a new video tagged with this channel's name and appends it
// to the upload list. This is the sole creation path for videos.
func (c *Channel) Upload(title string, durationSec int) *video.Video {
	v := video.New(c.ids, title, c.Name, durationSec)
	c.uploads = append(c.uploads, v)
	log.WithFields(log.Fields{
		"channel":  c.Name,
		"video_id": strconv.FormatInt(v.ID, 10),
	}).Info(fmt.Sprintf("Uploaded %q", title))
	return v
}

// Subscribe adds a username to the subscriber set.
func (c *Channel) Subscribe(username string) result.Result {
	if _, ok := c.subscribers[username]; ok {
		return result.AlreadyExists(fmt.Sprintf("%s already subscribed", username))
	}
	c.subscribers[username] = struct{}{}
	return result.OK(fmt.Sprintf("%s subscribed to %s", username, c.Name))
}

// Unsubscribe removes a username from the subscriber set.
func (c *Channel) Unsubscribe(username string) result.Result {
	if _, ok := c.subscribers[username]; !ok {
		return result.NotFound(fmt.Sprintf("%s was not subscribed", username))
	}
	delete(c.subscribers, username)
	return result.OK(fmt.Sprintf("%s unsubscribed from %s", username, c.Name))
}

func (c *Channel) SubscriberCount() int {
	return len(c.subscribers)
}

// Uploads returns a snapshot of owned videos in upload order.
func (c *Channel) Uploads() []*video.Video {
	out := make([]*video.Video, len(c.uploads))
	copy(out, c.uploads)
	return out
}
