package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("room")
	assert.Equal(t, "room_1", g.Generate())
	assert.Equal(t, "room_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	g := idgen.NewSequential("")
	seen := make(chan string, 100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- g.Generate()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]struct{})
	for id := range seen {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 100)
}

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("run")
	a, b := g.Generate(), g.Generate()

	assert.True(t, strings.HasPrefix(a, "run_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "run_"), 36)
}
