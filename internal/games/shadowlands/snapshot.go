package shadowlands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	State    State
	Level    int
	Score    int
	Lives    int
	Stars    int
	PlayerX  float64
	PlayerY  float64
	PlayerVY float64
	Grounded bool
	CameraX  float64
	Entities int
	Width    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Level:    g.levelNum,
		Score:    g.score,
		Lives:    g.lives,
		Stars:    g.stars,
		CameraX:  g.cameraX,
		Entities: len(g.entities),
		Width:    g.level.Width,
	}
	if g.player != nil {
		s.PlayerX = g.player.X
		s.PlayerY = g.player.Y
		s.PlayerVY = g.player.VY
		s.Grounded = g.player.Grounded
	}
	return s
}

// Hash fingerprints the snapshot plus every entity position.
func (g *Game) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%+v", g.Snapshot())
	for _, e := range g.entities {
		fmt.Fprintf(h, "|%d:%.4f,%.4f,%.4f,%t", e.Kind, e.X, e.Y, e.CrumbleTimer, e.Removed)
	}
	return hex.EncodeToString(h.Sum(nil))
}
