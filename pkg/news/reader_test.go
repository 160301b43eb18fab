package news_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/pkg/news"
	"github.com/dmitrymomot/dispatchkit/pkg/notify"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReader_Receive(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	r := news.NewReader("Alice", buf)

	require.NoError(t, r.Receive(context.Background(), "Hello"))
	assert.Equal(t, "Alice received news update: Hello\n", buf.String())
	assert.Equal(t, 1, r.Received())
	assert.Equal(t, []string{"Hello"}, r.History())
	assert.Equal(t, "Alice", r.Name())
	assert.Equal(t, "news.Reader(Alice)", r.String())
}

func TestReader_WriteFailure(t *testing.T) {
	t.Parallel()

	r := news.NewReader("Bob", failingWriter{})
	err := r.Receive(context.Background(), "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bob")
	assert.Zero(t, r.Received())
}

func TestReader_NilWriter(t *testing.T) {
	t.Parallel()

	r := news.NewReader("Quiet", nil)
	require.NoError(t, r.Receive(context.Background(), "Hello"))
	assert.Equal(t, 1, r.Received())
}

func TestReaders_OnHub(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buf := &bytes.Buffer{}
	hub := notify.New[string]()
	alice := news.NewReader("Alice", buf)
	bob := news.NewReader("Bob", buf)
	charlie := news.NewReader("Charlie", buf)

	hub.Subscribe(alice)
	hub.Subscribe(bob)
	require.NoError(t, hub.Publish(ctx, "Breaking News: Java Observer Pattern Simplified!"))
	hub.Unsubscribe(bob)
	require.NoError(t, hub.Publish(ctx, "Latest Update: Observer Pattern in Action!"))
	hub.Subscribe(charlie)
	require.NoError(t, hub.Publish(ctx, "News Flash: New Observer Joined the Channel!"))

	assert.Equal(t, 3, alice.Received())
	assert.Equal(t, 1, bob.Received())
	assert.Equal(t, 1, charlie.Received())

	want := "Alice received news update: Breaking News: Java Observer Pattern Simplified!\n" +
		"Bob received news update: Breaking News: Java Observer Pattern Simplified!\n" +
		"Alice received news update: Latest Update: Observer Pattern in Action!\n" +
		"Alice received news update: News Flash: New Observer Joined the Channel!\n" +
		"Charlie received news update: News Flash: New Observer Joined the Channel!\n"
	assert.Equal(t, want, buf.String())
}
