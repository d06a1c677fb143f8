package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	c := Generate(81)

	assert.Equal(t, 81, c.Len())
	cards := c.Cards()
	assert.Equal(t, 1, cards[0].ID)
	assert.Equal(t, "01.png", cards[0].Image)
	assert.Equal(t, 81, cards[80].ID)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.json")
	manifest := `[{"id":1,"image":"01.png"},{"id":2,"image":"02.png"},{"id":3,"image":"03.png"}]`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, Card{ID: 2, Image: "02.png"}, c.Cards()[1])
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSample_DistinctAndFromCatalog(t *testing.T) {
	t.Parallel()

	c := Generate(81)
	sample := c.Sample(25)

	require.Len(t, sample, 25)
	seen := make(map[int]bool)
	for _, card := range sample {
		assert.False(t, seen[card.ID], "card %d sampled twice", card.ID)
		assert.GreaterOrEqual(t, card.ID, 1)
		assert.LessOrEqual(t, card.ID, 81)
		seen[card.ID] = true
	}
}

func TestSample_MoreThanCatalog(t *testing.T) {
	t.Parallel()

	c := Generate(5)
	assert.Len(t, c.Sample(25), 5)
}

func TestSample_DoesNotMutateCatalog(t *testing.T) {
	t.Parallel()

	c := Generate(81)
	_ = c.Sample(81)

	cards := c.Cards()
	for i, card := range cards {
		assert.Equal(t, i+1, card.ID)
	}
}

func TestPickFrom(t *testing.T) {
	t.Parallel()

	pool := Generate(25).Cards()

	// With replacement: the pool is untouched and every pick is a member
	for range 100 {
		picked := PickFrom(pool)
		assert.GreaterOrEqual(t, picked.ID, 1)
		assert.LessOrEqual(t, picked.ID, 25)
	}
	assert.Len(t, pool, 25)
}
