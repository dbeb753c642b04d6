package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GitHub", "github"},
		{"My Cool Site", "my-cool-site"},
		{"My   Cool\tSite", "my-cool-site"},
		{"  padded name ", "padded-name"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

func TestSlug_Idempotent(t *testing.T) {
	for _, name := range []string{"My Cool Site", "LinkedIn", "a  b  c"} {
		assert.Equal(t, Slug(name), Slug(Slug(name)))
	}
}

func TestLinkIndex_ResolveIsCaseAndSpaceInsensitive(t *testing.T) {
	idx := NewLinkIndex([]Link{
		{Name: "My Cool Site", URL: "https://cool.example"},
		{Name: "GitHub", URL: "https://github.com/cormacGreaney"},
	})

	for _, query := range []string{"my cool site", "My   Cool Site", "MY COOL SITE", "my-cool-site"} {
		link, ok := idx.Resolve(query)
		require.True(t, ok, query)
		assert.Equal(t, "https://cool.example", link.URL)
	}

	_, ok := idx.Resolve("gitlab")
	assert.False(t, ok)
}

func TestLinkIndex_LastOccurrenceWins(t *testing.T) {
	idx := NewLinkIndex([]Link{
		{Name: "Blog", URL: "https://first.example"},
		{Name: "blog", URL: "https://second.example"},
	})

	link, ok := idx.Resolve("BLOG")
	require.True(t, ok)
	assert.Equal(t, "https://second.example", link.URL)
	assert.Len(t, idx.Links(), 2)
}

func TestLinkIndex_LinksPreserveOrder(t *testing.T) {
	source := []Link{{Name: "b", URL: "u1"}, {Name: "a", URL: "u2"}}
	idx := NewLinkIndex(source)
	source[0].Name = "mutated"

	assert.Equal(t, []Link{{Name: "b", URL: "u1"}, {Name: "a", URL: "u2"}}, idx.Links())
}

func TestLinkIndex_Nil(t *testing.T) {
	var idx *LinkIndex

	_, ok := idx.Resolve("anything")
	assert.False(t, ok)
	assert.Nil(t, idx.Links())
	assert.Equal(t, 0, idx.Len())
}

func TestSnapshot_Readiness(t *testing.T) {
	empty := &Snapshot{}
	assert.False(t, empty.HasProjects())
	assert.False(t, empty.HasBio())
	assert.False(t, empty.HasSkills())
	assert.False(t, empty.HasLinks())
	assert.False(t, empty.HasFiles())

	full := &Snapshot{
		Projects: []Project{{Name: "Greanium"}},
		Bio:      &Bio{Skills: []Skill{{Name: "Go"}}},
		Links:    NewLinkIndex([]Link{{Name: "x", URL: "y"}}),
		Files:    []File{{Name: "resume.pdf"}},
	}
	assert.True(t, full.HasProjects())
	assert.True(t, full.HasBio())
	assert.True(t, full.HasSkills())
	assert.True(t, full.HasLinks())
	assert.True(t, full.HasFiles())
}

func TestStore_LoadNeverNil(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store.Load())

	store.Replace(nil)
	require.NotNil(t, store.Load())

	var zero Store
	require.NotNil(t, zero.Load())
}

func TestStore_ReplaceIsWholesale(t *testing.T) {
	store := NewStore()
	first := store.Load()

	next := &Snapshot{Projects: []Project{{Name: "p"}}}
	store.Replace(next)

	assert.Same(t, next, store.Load())
	assert.False(t, first.HasProjects())
}

func TestStore_ConcurrentReadersSeeCompleteSnapshots(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			store.Replace(&Snapshot{
				Projects: []Project{{Name: "p"}},
				Bio:      &Bio{Name: "n"},
			})
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				snap := store.Load()
				assert.Equal(t, snap.HasProjects(), snap.HasBio())
			}
		}()
	}
	wg.Wait()
}
