package ledgerservice

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

const recentIDs = 1024

// TrxIDGenerator issues external ids of the form TRX-12345678 and never
// repeats one of the last recentIDs it handed out.
type TrxIDGenerator struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	ring   []string
	next   int
	random func() int
}

func NewTrxIDGenerator() *TrxIDGenerator {
	return &TrxIDGenerator{
		seen:   make(map[string]struct{}, recentIDs),
		ring:   make([]string, recentIDs),
		random: func() int { return rand.IntN(100_000_000) },
	}
}

func (g *TrxIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var id string
	for {
		id = fmt.Sprintf("TRX-%08d", g.random())
		if _, dup := g.seen[id]; !dup {
			break
		}
	}

	if old := g.ring[g.next]; old != "" {
		delete(g.seen, old)
	}
	g.ring[g.next] = id
	g.seen[id] = struct{}{}
	g.next = (g.next + 1) % recentIDs
	return id
}
