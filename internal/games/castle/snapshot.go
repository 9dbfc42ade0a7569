package castle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	State        State
	Level        int
	Wave         int
	ToSpawn      int
	Score        int
	Coins        int
	Defeated     int
	GemHealth    int
	Trolls       int
	Traps        int
	WavesCleared int
	Cursor       Cursor
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Level:        g.sched.Level,
		Wave:         g.sched.Wave,
		ToSpawn:      g.sched.TrollsToSpawn,
		Score:        g.world.Score,
		Coins:        g.world.Coins,
		Defeated:     g.world.Defeated,
		GemHealth:    g.world.Gem.Health,
		Trolls:       len(g.world.Trolls),
		Traps:        len(g.world.Traps),
		WavesCleared: g.wavesCleared,
		Cursor:       g.cursor,
	}
}

// Hash fingerprints the snapshot plus every troll and trap.
func (g *Game) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%+v", g.Snapshot())
	for _, t := range g.world.Trolls {
		fmt.Fprintf(h, "|t%d:%.4f,%.4f,%d,%s,%.4f", t.Floor, t.X, t.Y, t.Health, t.State, t.Speed)
	}
	for _, t := range g.world.Traps {
		fmt.Fprintf(h, "|p%d:%.4f,%d,%d,%.4f,%t", t.Floor, t.X, t.Kind, t.Uses, t.Cooldown, t.Active)
	}
	return hex.EncodeToString(h.Sum(nil))
}
