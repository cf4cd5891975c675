package store

import (
	"strconv"

	"github.com/Strum355/log"
	"github.com/spf13/viper"

	"MyTube/channel"
)

// Seed populates the default catalog so the platform is browsable before
// anyone registers: two system-owned channels with a few uploads. Disabled
// by setting seed.enabled to false.
func (s *Store) Seed() {
	if !viper.GetBool("seed.enabled") {
		return
	}

	seedVideo := func(ch *channel.Channel, title string, durationSec int) {
		v := ch.Upload(title, durationSec)
		s.videos[v.ID] = v
	}

	tech := channel.New(s.ids, "KavyaTech", "system", "Programming tutorials")
	s.channels[tech.Name] = tech
	seedVideo(tech, "Systems Programming Deep Dive", 900)
	seedVideo(tech, "Data Structures Overview", 720)

	music := channel.New(s.ids, "IndieMusic", "system", "Music channel")
	s.channels[music.Name] = music
	seedVideo(music, "Chill Loops", 300)

	log.WithFields(log.Fields{
		"channels": strconv.Itoa(len(s.channels)),
		"videos":   strconv.Itoa(len(s.videos)),
	}).Info("Seeded default catalog")
}
