package user

import (
	"fmt"

	"MyTube/channel"
	"MyTube/playlist"
	"MyTube/result"
	"MyTube/video"
)

// User holds the per-account state: channel subscriptions by name, watch
// history by video id, and named playlists. The username is fixed at
// registration.
type User struct {
	Username      string
	subscriptions map[string]struct{}
	history       []int64
	playlists     map[string]*playlist.Playlist
}

func New(username string) *User {
	return &User{
		Username:      username,
		subscriptions: map[string]struct{}{},
		playlists:     map[string]*playlist.Playlist{},
	}
}

// Watch records the video in the user's history and starts playback. History
// is unbounded and not deduplicated; watching twice records two entries.
func (u *User) Watch(v *video.Video) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	u.history = append(u.history, v.ID)
	return v.Play()
}

func (u *User) AddComment(v *video.Video, text string) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	return v.AddComment(u.Username, text)
}

func (u *User) LikeComment(v *video.Video, commentID int64) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	return v.LikeComment(commentID)
}

// RemoveComment asks the video to remove a comment with this user as the
// requester. The hosting channel's owner is supplied by the caller.
func (u *User) RemoveComment(v *video.Video, commentID int64, channelOwner string) result.Result {
	if v == nil {
		return result.NotFound("Video not found")
	}
	return v.RemoveComment(commentID, u.Username, channelOwner)
}

// CreatePlaylist creates an empty playlist. Names are unique per user, not
// globally.
func (u *User) CreatePlaylist(name string) result.Result {
	if _, ok := u.playlists[name]; ok {
		return result.AlreadyExists("Playlist exists")
	}
	u.playlists[name] = playlist.New(name)
	return result.OK(fmt.Sprintf("Created playlist %q", name))
}

// Playlist looks up a playlist by name with no side effects.
func (u *User) Playlist(name string) (*playlist.Playlist, bool) {
	p, ok := u.playlists[name]
	return p, ok
}

// SubscribeChannel keeps the user's subscription set in lockstep with the
// channel's subscriber set. If the local record already shows the channel,
// it short-circuits without calling the channel; the two sets can only
// diverge if the channel is mutated through another path.
func (u *User) SubscribeChannel(ch *channel.Channel) result.Result {
	if _, ok := u.subscriptions[ch.Name]; ok {
		return result.AlreadyExists("Already subscribed")
	}
	u.subscriptions[ch.Name] = struct{}{}
	return ch.Subscribe(u.Username)
}

// UnsubscribeChannel is the converse of SubscribeChannel, with the same
// lockstep short-circuit.
func (u *User) UnsubscribeChannel(ch *channel.Channel) result.Result {
	if _, ok := u.subscriptions[ch.Name]; !ok {
		return result.NotFound("Not subscribed")
	}
	delete(u.subscriptions, ch.Name)
	return ch.Unsubscribe(u.Username)
}

// History returns a snapshot of watched video ids in watch order.
func (u *User) History() []int64 {
	out := make([]int64, len(u.history))
	copy(out, u.history)
	return out
}

// Subscriptions returns the set of subscribed channel names.
func (u *User) Subscriptions() map[string]struct{} {
	out := make(map[string]struct{}, len(u.subscriptions))
	for name := range u.subscriptions {
		out[name] = struct{}{}
	}
	return out
}
