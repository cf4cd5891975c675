package channel

import (
	"os"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"

	"MyTube/idgen"
	"MyTube/result"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	os.Exit(m.Run())
}

func TestChannel_Upload(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "test channel")

	v := ch.Upload("First Video", 300)

	assert.Equal(t, "First Video", v.Title)
	assert.Equal(t, "TestChannel", v.Uploader)
	assert.Equal(t, 300, v.DurationSec)
	assert.Equal(t, int64(0), v.Views())
	assert.Greater(t, v.ID, int64(0))
}

func TestChannel_UploadsPreserveOrder(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "")

	first := ch.Upload("one", 10)
	second := ch.Upload("two", 20)
	third := ch.Upload("three", 30)

	uploads := ch.Uploads()
	assert.Equal(t, 3, len(uploads))
	assert.Equal(t, first.ID, uploads[0].ID)
	assert.Equal(t, second.ID, uploads[1].ID)
	assert.Equal(t, third.ID, uploads[2].ID)
}

func TestChannel_Subscribe(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "")

	res := ch.Subscribe("alice")

	assert.True(t, res.IsOK())
	assert.Equal(t, 1, ch.SubscriberCount())
}

func TestChannel_Subscribe_Idempotent(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "")

	ch.Subscribe("alice")
	res := ch.Subscribe("alice")

	assert.Equal(t, result.StatusAlreadyExists, res.Status)
	assert.Equal(t, 1, ch.SubscriberCount())
}

func TestChannel_Unsubscribe(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "")
	ch.Subscribe("alice")

	res := ch.Unsubscribe("alice")

	assert.True(t, res.IsOK())
	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestChannel_Unsubscribe_NotSubscribed(t *testing.T) {
	ch := New(idgen.New(), "TestChannel", "owner", "")

	res := ch.Unsubscribe("alice")

	assert.Equal(t, result.StatusNotFound, res.Status)
}
