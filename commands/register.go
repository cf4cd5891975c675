package commands

func init() {
	registerCommands()
}

// registerCommands adds every menu command to the registry.
func registerCommands() {
	commands.Add(
		&Command{
			Selector:    1,
			Name:        "register",
			Description: "Register",
		},
		registerUser,
	)

	commands.Add(
		&Command{
			Selector:    2,
			Name:        "login",
			Description: "Login",
		},
		loginUser,
	)

	commands.Add(
		&Command{
			Selector:    3,
			Name:        "logout",
			Description: "Logout",
		},
		logoutUser,
	)

	commands.Add(
		&Command{
			Selector:    4,
			Name:        "create-channel",
			Description: "Create channel (must be logged in)",
		},
		createChannel,
	)

	commands.Add(
		&Command{
			Selector:    5,
			Name:        "upload",
			Description: "Upload video to your channel (logged in)",
		},
		uploadVideo,
	)

	commands.Add(
		&Command{
			Selector:    6,
			Name:        "subscribe",
			Description: "Subscribe to channel (logged in)",
		},
		subscribeChannel,
	)

	commands.Add(
		&Command{
			Selector:    7,
			Name:        "watch",
			Description: "Watch video by id",
		},
		watchVideo,
	)

	commands.Add(
		&Command{
			Selector:    8,
			Name:        "comment",
			Description: "Add comment to video (logged in)",
		},
		addComment,
	)

	commands.Add(
		&Command{
			Selector:    9,
			Name:        "like-comment",
			Description: "Like comment on video (logged in)",
		},
		likeComment,
	)

	commands.Add(
		&Command{
			Selector:    10,
			Name:        "list-comments",
			Description: "List comments on video",
		},
		listComments,
	)

	commands.Add(
		&Command{
			Selector:    11,
			Name:        "search",
			Description: "Search videos by title",
		},
		searchVideos,
	)

	commands.Add(
		&Command{
			Selector:    12,
			Name:        "create-playlist",
			Description: "Create playlist (logged in)",
		},
		createPlaylist,
	)

	commands.Add(
		&Command{
			Selector:    13,
			Name:        "add-to-playlist",
			Description: "Add video to playlist (logged in)",
		},
		addToPlaylist,
	)

	commands.Add(
		&Command{
			Selector:    14,
			Name:        "play-playlist",
			Description: "Play playlist (logged in)",
		},
		playPlaylist,
	)

	commands.Add(
		&Command{
			Selector:    15,
			Name:        "list-videos",
			Description: "List all videos",
		},
		listVideos,
	)

	commands.Add(
		&Command{
			Selector:    16,
			Name:        "list-uploads",
			Description: "List channel uploads",
		},
		listChannelUploads,
	)

	commands.Add(
		&Command{
			Selector:    17,
			Name:        "toggle-perf",
			Description: "Toggle performance logging",
		},
		togglePerf,
	)

	commands.Add(
		&Command{
			Selector:    18,
			Name:        "benchmark",
			Description: "Run performance benchmark",
		},
		runBenchmark,
	)

	commands.Add(
		&Command{
			Selector:    19,
			Name:        "remove-comment",
			Description: "Remove comment on video (logged in)",
		},
		removeComment,
	)

	commands.Add(
		&Command{
			Selector:    20,
			Name:        "unsubscribe",
			Description: "Unsubscribe from channel (logged in)",
		},
		unsubscribeChannel,
	)

	commands.Add(
		&Command{
			Selector:    21,
			Name:        "history",
			Description: "Show watch history (logged in)",
		},
		showHistory,
	)
}
