package main

import (
	"flag"
	"os"

	"MyTube/commands"
	"MyTube/config"
	"MyTube/store"

	"github.com/Strum355/log"
	"github.com/spf13/viper"
)

var production *bool

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Sets up Configurations for Viper
	config.InitConfig()

	st := store.New(viper.GetBool("perf.enabled"))
	st.Seed()

	log.Info("MyTube is initialising")

	commands.Run(st, os.Stdin, os.Stdout)

	log.Info("Cleanly exiting")
}
