package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Strum355/log"

	"MyTube/channel"
	"MyTube/idgen"
	"MyTube/perf"
	"MyTube/playlist"
	"MyTube/result"
	"MyTube/user"
	"MyTube/video"
)

// Store is the whole application state: the three lookup tables, the current
// session, and the shared id source. It is passed explicitly into the
// dispatcher rather than living in package globals, so the core is testable
// without process-lifetime side effects.
type Store struct {
	users    map[string]*user.User
	channels map[string]*channel.Channel
	videos   map[int64]*video.Video
	current  *user.User
	ids      *idgen.Generator
	Perf     *perf.Monitor
}

func New(perfEnabled bool) *Store {
	return &Store{
		users:    map[string]*user.User{},
		channels: map[string]*channel.Channel{},
		videos:   map[int64]*video.Video{},
		ids:      idgen.New(),
		Perf:     perf.NewMonitor(perfEnabled),
	}
}

// CurrentUser returns the logged-in user, or nil for an anonymous session.
func (s *Store) CurrentUser() *user.User {
	return s.current
}

// Video looks up a video by id in the global table.
func (s *Store) Video(id int64) (*video.Video, bool) {
	v, ok := s.videos[id]
	return v, ok
}

// Channel looks up a channel by name.
func (s *Store) Channel(name string) (*channel.Channel, bool) {
	ch, ok := s.channels[name]
	return ch, ok
}

// User looks up a user by name.
func (s *Store) User(name string) (*user.User, bool) {
	u, ok := s.users[name]
	return u, ok
}

// RegisterUser creates a new account. Usernames are unique keys.
func (s *Store) RegisterUser(username string) result.Result {
	if username == "" {
		return result.InvalidInput("Empty name")
	}
	if _, ok := s.users[username]; ok {
		return result.AlreadyExists("User exists")
	}
	s.users[username] = user.New(username)
	return result.OK(fmt.Sprintf("Registered user: %s", username))
}

// Login sets the current session to the named user.
func (s *Store) Login(username string) result.Result {
	u, ok := s.users[username]
	if !ok {
		return result.NotFound("No such user. Register first.")
	}
	s.current = u
	log.WithFields(log.Fields{"user": username}).Info("User logged in")
	return result.OK(fmt.Sprintf("Logged in as %s", username))
}

// Logout clears the current session.
func (s *Store) Logout() result.Result {
	if s.current == nil {
		return result.InvalidInput("Not logged in")
	}
	name := s.current.Username
	s.current = nil
	log.WithFields(log.Fields{"user": name}).Info("User logged out")
	return result.OK(fmt.Sprintf("Logged out %s", name))
}

// CreateChannel creates a channel owned by the current user. Channel names
// are unique keys and the owner is immutable.
func (s *Store) CreateChannel(name, description string) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	if name == "" {
		return result.InvalidInput("Empty name")
	}
	if _, ok := s.channels[name]; ok {
		return result.AlreadyExists("Channel exists")
	}
	s.channels[name] = channel.New(s.ids, name, s.current.Username, description)
	return result.OK(fmt.Sprintf("Channel %q created", name))
}

// Upload adds a video to a channel the current user owns and registers it in
// the global video table.
func (s *Store) Upload(channelName, title string, durationSec int) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	ch, ok := s.channels[channelName]
	if !ok {
		return result.NotFound("Channel not found")
	}
	if ch.Owner != s.current.Username {
		return result.PermissionDenied("You do not own this channel")
	}
	v := ch.Upload(title, durationSec)
	s.videos[v.ID] = v
	return result.OKWithID(fmt.Sprintf("Uploaded %q (id=%d) to channel %s", title, v.ID, channelName), v.ID)
}

// Subscribe subscribes the current user to a channel.
func (s *Store) Subscribe(channelName string) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	ch, ok := s.channels[channelName]
	if !ok {
		return result.NotFound("Channel not found")
	}
	return s.current.SubscribeChannel(ch)
}

// Unsubscribe removes the current user's subscription to a channel.
func (s *Store) Unsubscribe(channelName string) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	ch, ok := s.channels[channelName]
	if !ok {
		return result.NotFound("Channel not found")
	}
	return s.current.UnsubscribeChannel(ch)
}

// Watch plays a video by id. With a session the watch is recorded in the
// user's history; anonymous watches play the video directly.
func (s *Store) Watch(videoID int64) result.Result {
	timer := s.Perf.Start("store.Watch")
	defer timer.Stop()

	v, ok := s.videos[videoID]
	if !ok {
		return result.NotFound("Video not found")
	}
	if s.current != nil {
		return s.current.Watch(v)
	}
	return v.Play()
}

// AddComment comments on a video as the current user.
func (s *Store) AddComment(videoID int64, text string) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	v, ok := s.videos[videoID]
	if !ok {
		return result.NotFound("Video not found")
	}
	return s.current.AddComment(v, text)
}

// LikeComment likes a comment on a video as the current user.
func (s *Store) LikeComment(videoID, commentID int64) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	v, ok := s.videos[videoID]
	if !ok {
		return result.NotFound("Video not found")
	}
	return s.current.LikeComment(v, commentID)
}

// RemoveComment removes a comment as the current user. Permitted only for
// the comment's author or the owner of the channel hosting the video.
func (s *Store) RemoveComment(videoID, commentID int64) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	v, ok := s.videos[videoID]
	if !ok {
		return result.NotFound("Video not found")
	}
	owner := ""
	if ch, ok := s.channels[v.Uploader]; ok {
		owner = ch.Owner
	}
	return s.current.RemoveComment(v, commentID, owner)
}

// ListComments returns a video's comments in insertion order. No session is
// required.
func (s *Store) ListComments(videoID int64) ([]*video.Comment, result.Result) {
	v, ok := s.videos[videoID]
	if !ok {
		return nil, result.NotFound("Video not found")
	}
	return v.Comments(), result.OK(fmt.Sprintf("Comments for %q", v.Title))
}

// Search returns all videos whose title contains the query, matched
// case-insensitively, sorted by id.
func (s *Store) Search(query string) []*video.Video {
	timer := s.Perf.Start("store.Search")
	defer timer.Stop()

	q := strings.ToLower(query)
	matches := []*video.Video{}
	for _, v := range s.videos {
		if strings.Contains(strings.ToLower(v.Title), q) {
			matches = append(matches, v)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// CreatePlaylist creates a playlist for the current user.
func (s *Store) CreatePlaylist(name string) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	return s.current.CreatePlaylist(name)
}

// AddToPlaylist appends a video id to one of the current user's playlists.
// Both the playlist and the video must exist at add time; once stored, the
// id is a weak reference that may dangle later.
func (s *Store) AddToPlaylist(playlistName string, videoID int64) result.Result {
	if s.current == nil {
		return result.NotLoggedIn("Login required")
	}
	p, ok := s.current.Playlist(playlistName)
	if !ok {
		return result.NotFound("Playlist not found")
	}
	v, ok := s.videos[videoID]
	if !ok {
		return result.NotFound("Video not found")
	}
	p.Add(videoID, v.Title)
	return result.OK(fmt.Sprintf("Added %q to playlist %q", v.Title, playlistName))
}

// PlayPlaylist resolves one of the current user's playlists against the
// video table, then plays and pauses each surviving entry in order. Dangling
// ids are skipped silently.
func (s *Store) PlayPlaylist(name string) ([]playlist.Entry, result.Result) {
	if s.current == nil {
		return nil, result.NotLoggedIn("Login required")
	}
	p, ok := s.current.Playlist(name)
	if !ok {
		return nil, result.NotFound("Playlist not found")
	}

	timer := s.Perf.Start("store.PlayPlaylist")
	defer timer.Stop()

	entries := p.Resolve(s.videos)
	for _, e := range entries {
		v := s.videos[e.VideoID]
		v.Play()
		v.Pause()
	}
	return entries, result.OK(fmt.Sprintf("Playing playlist %q", name))
}

// AllVideos returns the whole video table sorted by id.
func (s *Store) AllVideos() []*video.Video {
	timer := s.Perf.Start("store.AllVideos")
	defer timer.Stop()

	all := make([]*video.Video, 0, len(s.videos))
	for _, v := range s.videos {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// ChannelUploads returns a channel's videos in upload order.
func (s *Store) ChannelUploads(name string) ([]*video.Video, result.Result) {
	ch, ok := s.channels[name]
	if !ok {
		return nil, result.NotFound("Channel not found")
	}
	return ch.Uploads(), result.OK(fmt.Sprintf("Uploads for channel %s", name))
}

// History returns the current user's watch history in watch order.
func (s *Store) History() ([]int64, result.Result) {
	if s.current == nil {
		return nil, result.NotLoggedIn("Login required")
	}
	return s.current.History(), result.OK(fmt.Sprintf("Watch history for %s", s.current.Username))
}
