package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"

	"MyTube/store"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	os.Exit(m.Run())
}

// runScript feeds a scripted session through the command loop and returns
// everything written to the console.
func runScript(st *store.Store, lines ...string) string {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	Run(st, in, &out)
	return out.String()
}

func TestRun_FullSession(t *testing.T) {
	st := store.New(false)

	out := runScript(st,
		"1", "alice",
		"2", "alice",
		"4", "Vlogs", "My daily vlogs",
		"5", "Vlogs", "Intro", "120",
		"7", "1",
		"11", "intro",
		"99",
	)

	assert.Contains(t, out, "Registered user: alice")
	assert.Contains(t, out, "Logged in as alice")
	assert.Contains(t, out, `Channel "Vlogs" created`)
	assert.Contains(t, out, `Uploaded "Intro" (id=1) to channel Vlogs`)
	assert.Contains(t, out, `Playing "Intro" (views: 1)`)
	assert.Contains(t, out, "[1] Intro (channel: Vlogs)")
	assert.Contains(t, out, "Goodbye")
}

func TestRun_SessionRequiredCommands(t *testing.T) {
	st := store.New(false)

	out := runScript(st,
		"4", "Vlogs", "description",
		"12", "favs",
		"99",
	)

	assert.Contains(t, out, "Login required")
}

func TestRun_UnknownSelector(t *testing.T) {
	st := store.New(false)

	out := runScript(st, "42", "99")

	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "Goodbye")
}

func TestRun_NonNumericSelector(t *testing.T) {
	st := store.New(false)

	out := runScript(st, "hello", "99")

	assert.Contains(t, out, "Enter a number")
	assert.Contains(t, out, "Goodbye")
}

func TestRun_MenuListsAllCommands(t *testing.T) {
	st := store.New(false)

	out := runScript(st, "0", "99")

	assert.Contains(t, out, "--- MyTube ---")
	assert.Contains(t, out, "Register")
	assert.Contains(t, out, "Watch video by id")
	assert.Contains(t, out, "Play playlist (logged in)")
	assert.Contains(t, out, "Exit")
}

func TestRun_EndsOnEOF(t *testing.T) {
	st := store.New(false)

	// No exit selector: the loop must end when input runs out.
	out := runScript(st, "3")

	assert.Contains(t, out, "Not logged in")
}

func TestRun_DomainErrorsDoNotEndLoop(t *testing.T) {
	st := store.New(false)

	out := runScript(st,
		"7", "424242",
		"2", "nobody",
		"99",
	)

	assert.Contains(t, out, "Video not found")
	assert.Contains(t, out, "No such user. Register first.")
	assert.Contains(t, out, "Goodbye")
}

func TestConsole_ReadInt_RepromptsOnMalformedInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("abc\n42\n"), &out)

	n, err := c.ReadInt("Duration: ")

	assert.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Contains(t, out.String(), "Invalid number, try again")
}

func TestConsole_ReadInt64_EmptyLineYieldsMinusOne(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("\n"), &out)

	n, err := c.ReadInt64("Video id: ")

	assert.NoError(t, err)
	assert.Equal(t, int64(-1), n)
}
