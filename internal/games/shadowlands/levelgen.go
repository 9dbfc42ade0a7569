package shadowlands

import (
	"math/rand"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// Level is a freshly generated layout.
type Level struct {
	Number      int
	Entities    []*Entity
	StartX      float64
	StartY      float64
	Width       float64
	SegmentUsed []string // segment names in placement order
}

// Generator stitches catalog segments into levels. It owns its RNG so the
// same seed reproduces the same sequence of layouts.
type Generator struct {
	cfg config.ShadowlandsConfig
	rng *rand.Rand
}

// NewGenerator creates a generator over the configured catalog.
func NewGenerator(cfg config.ShadowlandsConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// SegmentCount returns how many segments a level gets.
func (g *Generator) SegmentCount(level int) int {
	gen := g.cfg.Generator
	return gen.BaseSegments + level/max(gen.SegmentsDivisor, 1)
}

// MaxDifficulty returns the hardest segment difficulty allowed on a level.
func (g *Generator) MaxDifficulty(level int) int {
	gen := g.cfg.Generator
	return min(gen.DifficultyCap, 1+level/max(gen.DifficultyDivisor, 1))
}

// GapRange returns the inclusive bounds of the gap after each segment.
// Early levels use small gaps; later ones widen with the level number.
func (g *Generator) GapRange(level int) (int, int) {
	gen := g.cfg.Generator
	if level <= gen.EasyLevelMax {
		return gen.EasyGapMin, gen.EasyGapMax
	}
	return gen.GapMin, gen.GapBaseMax + level*gen.GapPerLevel
}

// Generate builds a new layout for the given level number. Each call
// consumes randomness, so calling it twice for the same level yields
// different layouts.
func (g *Generator) Generate(level int) Level {
	gen := g.cfg.Generator
	ents := g.cfg.Entities

	sp := gen.StartPlatform
	out := Level{
		Number:   level,
		Entities: []*Entity{NewPlatform(sp.X, sp.Y, sp.W, sp.H)},
		StartX:   g.cfg.Player.StartX,
		StartY:   g.cfg.Player.StartY,
	}

	eligible := g.eligible(g.MaxDifficulty(level))
	minGap, maxGap := g.GapRange(level)

	x := sp.X + sp.W
	for i := 0; i < g.SegmentCount(level); i++ {
		if len(eligible) == 0 {
			break
		}
		seg := eligible[core.RandomInt(g.rng, 0, len(eligible)-1)]
		out.SegmentUsed = append(out.SegmentUsed, seg.Name)

		for _, item := range seg.Layout {
			if e := g.place(item, x, ents); e != nil {
				out.Entities = append(out.Entities, e)
			}
		}

		x += seg.Width + float64(core.RandomInt(g.rng, minGap, maxGap))
	}

	// Goal platform with the key on top
	out.Entities = append(out.Entities,
		NewPlatform(x, gen.GoalPlatformY, gen.GoalPlatformWidth, gen.GoalPlatformHeight),
		NewKey(x+gen.KeyOffsetX, gen.GoalPlatformY+gen.KeyOffsetY, ents.KeySize),
	)
	out.Width = x + gen.WidthPadding

	return out
}

func (g *Generator) eligible(maxDifficulty int) []config.Segment {
	var out []config.Segment
	for _, s := range g.cfg.Segments {
		if s.Difficulty <= maxDifficulty {
			out = append(out, s)
		}
	}
	return out
}

// place converts a segment item into an entity offset by originX. Y stays
// absolute.
func (g *Generator) place(item config.SegmentItem, originX float64, ents config.ShadowlandsEntities) *Entity {
	x := originX + item.X
	switch item.Type {
	case config.ItemPlatform:
		return NewPlatform(x, item.Y, item.W, item.H)
	case config.ItemSkeleton:
		return NewSkeleton(x, item.Y, item.W, item.H, ents.CrumbleDuration, ents.CrumbleShake)
	case config.ItemSpike:
		return NewSpike(x, item.Y, sizeOr(item.W, ents.SpikeSize))
	case config.ItemStar:
		return NewStar(x, item.Y, sizeOr(item.W, ents.StarSize))
	case config.ItemKey:
		return NewKey(x, item.Y, sizeOr(item.W, ents.KeySize))
	default:
		return nil
	}
}

func sizeOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
