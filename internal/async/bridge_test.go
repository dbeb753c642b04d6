package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func receive(t *testing.T, b *Bridge) Completion {
	t.Helper()
	select {
	case c := <-b.Completions():
		b.Delivered()
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion")
		return Completion{}
	}
}

func TestBridge_SuccessCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	id := b.Go(Job{
		Command: "ai",
		Run: func(context.Context) ([]string, error) {
			return []string{"first\r\nsecond\n\nfourth"}, nil
		},
	})
	require.NotEmpty(t, id)

	c := receive(t, b)
	assert.Equal(t, id, c.JobID)
	assert.Equal(t, "ai", c.Command)
	assert.NoError(t, c.Err)
	assert.Equal(t, []string{"first", "second", "", "fourth"}, c.Lines())
	assert.Equal(t, 0, b.Outstanding())
	b.Wait()
}

func TestBridge_FailureIsOneLine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	b.Go(Job{
		ID:      "job-1",
		Command: "ai",
		Run: func(context.Context) ([]string, error) {
			return []string{"ignored"}, errors.New("bad gateway\nwith detail")
		},
		Failure: func(err error) string { return "AI connection error: " + err.Error() },
	})

	c := receive(t, b)
	assert.Equal(t, "job-1", c.JobID)
	assert.Equal(t, []string{"AI connection error: bad gateway\nwith detail"}, c.Lines())
	b.Wait()
}

func TestBridge_FailureWithoutRenderer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	b.Go(Job{Run: func(context.Context) ([]string, error) { return nil, errors.New("boom") }})

	assert.Equal(t, []string{"boom"}, receive(t, b).Lines())
	b.Wait()
}

func TestBridge_PanicBecomesFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	b.Go(Job{Command: "ai", Run: func(context.Context) ([]string, error) { panic("kaboom") }})

	c := receive(t, b)
	require.Error(t, c.Err)
	assert.Contains(t, c.Err.Error(), "kaboom")
	assert.Len(t, c.Lines(), 1)
	b.Wait()
}

func TestBridge_MissingRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	b.Go(Job{ID: "empty"})

	c := receive(t, b)
	assert.Error(t, c.Err)
	b.Wait()
}

func TestBridge_ConcurrentJobsCompleteIndependently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBridge(ctx)

	releaseFirst := make(chan struct{})
	first := b.Go(Job{Command: "ai", Run: func(context.Context) ([]string, error) {
		<-releaseFirst
		return []string{"hello 1\nhello 2"}, nil
	}})
	second := b.Go(Job{Command: "ai", Run: func(context.Context) ([]string, error) {
		return []string{"world 1\nworld 2"}, nil
	}})
	assert.Equal(t, 2, b.Outstanding())

	c := receive(t, b)
	assert.Equal(t, second, c.JobID)
	assert.Equal(t, []string{"world 1", "world 2"}, c.Lines())
	assert.Equal(t, 1, b.Outstanding())

	close(releaseFirst)
	c = receive(t, b)
	assert.Equal(t, first, c.JobID)
	assert.Equal(t, []string{"hello 1", "hello 2"}, c.Lines())
	assert.Equal(t, 0, b.Outstanding())
	b.Wait()
}

func TestBridge_ShutdownReleasesUndeliveredJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBridge(ctx)

	b.Go(Job{Run: func(ctx context.Context) ([]string, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}})

	cancel()
	b.Wait()
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\nb", "c"))
	assert.Equal(t, []string{""}, SplitLines(""))
	assert.Nil(t, SplitLines())
}
