package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainers(t *testing.T) {
	cs := Containers(3, 200, 150)
	require.Len(t, cs, 3)
	for i, c := range cs {
		assert.Equal(t, i, c.ContainerID)
		assert.Equal(t, 200, c.Width)
		assert.Equal(t, 150, c.Height)
		assert.Equal(t, 0, c.X)
		assert.Equal(t, 0, c.Y)
	}
	assert.Empty(t, Containers(0, 10, 10))
	assert.Empty(t, Containers(-1, 10, 10))
}

func TestItemsWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := Items(rng, 500, 1, 99)

	require.Len(t, items, 500)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Width, 1)
		assert.LessOrEqual(t, it.Width, 99)
		assert.GreaterOrEqual(t, it.Height, 1)
		assert.LessOrEqual(t, it.Height, 99)
		assert.False(t, it.IsPlaced())
	}
	assert.Equal(t, "Item 1", items[0].Label)
}

func TestItemsSameSeedSameSizes(t *testing.T) {
	a := Items(rand.New(rand.NewSource(99)), 20, 5, 50)
	b := Items(rand.New(rand.NewSource(99)), 20, 5, 50)
	for i := range a {
		assert.Equal(t, a[i].Width, b[i].Width)
		assert.Equal(t, a[i].Height, b[i].Height)
	}
}

func TestItemsSwappedBounds(t *testing.T) {
	items := Items(rand.New(rand.NewSource(3)), 50, 10, 4)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Width, 4)
		assert.LessOrEqual(t, it.Width, 10)
	}
}

func TestItemsFixedSize(t *testing.T) {
	items := Items(rand.New(rand.NewSource(3)), 5, 7, 7)
	for _, it := range items {
		assert.Equal(t, 7, it.Width)
		assert.Equal(t, 7, it.Height)
	}
}

func TestNewRand(t *testing.T) {
	_, seed := NewRand(42, func() int64 { t.Fatal("clock should not be read"); return 0 })
	assert.Equal(t, int64(42), seed)

	_, seed = NewRand(0, func() int64 { return 1234 })
	assert.Equal(t, int64(1234), seed)
}
