// Package replay records the input stream of a run and plays it back.
// Both games are deterministic for a given seed, so a recording of the
// elapsed time and input of every step reproduces the run exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/castle-arcade/internal/core"
	"github.com/vovakirdan/castle-arcade/internal/registry"
)

// Version is the recording format version written by Save.
const Version = 1

var (
	// ErrVersion is returned by Load for recordings of an unknown format.
	ErrVersion = errors.New("replay: unsupported version")
	// ErrNotHashable is returned when a game cannot fingerprint its state.
	ErrNotHashable = errors.New("replay: game does not support hashing")
	// ErrMismatch is returned by Verify when playback diverges.
	ErrMismatch = errors.New("replay: final hash mismatch")
)

// Resolution is the precision frame durations are stored with.
const Resolution = time.Microsecond

// Quantize rounds d down to Resolution. Hosts that record must step their
// game with the quantized duration, or playback drifts from the run.
func Quantize(d time.Duration) time.Duration {
	return d.Truncate(Resolution)
}

// Frame is the input of one step.
type Frame struct {
	DtMicros int64         `msgpack:"dt"`
	Held     []core.Action `msgpack:"held,omitempty"`
	Pressed  []core.Action `msgpack:"pressed,omitempty"`
}

// Elapsed returns the step duration.
func (f Frame) Elapsed() time.Duration {
	return time.Duration(f.DtMicros) * time.Microsecond
}

// Input rebuilds the step's input frame.
func (f Frame) Input() core.InputFrame {
	return core.FrameFromLists(f.Held, f.Pressed)
}

// Recording is a complete recorded run.
type Recording struct {
	Version   int     `msgpack:"v"`
	GameID    string  `msgpack:"game"`
	Seed      int64   `msgpack:"seed"`
	ScreenW   int     `msgpack:"w"`
	ScreenH   int     `msgpack:"h"`
	Frames    []Frame `msgpack:"frames"`
	FinalHash string  `msgpack:"hash,omitempty"`
}

// Runtime returns the runtime config the run was started with.
func (r *Recording) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = r.Seed
	if r.ScreenW > 0 {
		rc.ScreenW = r.ScreenW
	}
	if r.ScreenH > 0 {
		rc.ScreenH = r.ScreenH
	}
	return rc
}

// Duration returns the total simulated time.
func (r *Recording) Duration() time.Duration {
	var d time.Duration
	for _, f := range r.Frames {
		d += f.Elapsed()
	}
	return d
}

// Recorder collects frames while a game runs.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game reset with rc.
func NewRecorder(gameID string, rc core.RuntimeConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version: Version,
		GameID:  gameID,
		Seed:    rc.Seed,
		ScreenW: rc.ScreenW,
		ScreenH: rc.ScreenH,
	}}
}

// Record appends one step. elapsed should already be quantized.
func (r *Recorder) Record(elapsed time.Duration, in core.InputFrame) {
	r.rec.Frames = append(r.rec.Frames, Frame{
		DtMicros: Quantize(elapsed).Microseconds(),
		Held:     in.HeldList(),
		Pressed:  in.PressedList(),
	})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish stamps the final state hash and returns the recording.
func (r *Recorder) Finish(hash string) *Recording {
	rec := r.rec
	rec.FinalHash = hash
	return &rec
}

// Player steps through a recording.
type Player struct {
	rec *Recording
	pos int
}

// NewPlayer creates a player positioned at the first frame.
func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Next returns the next step, or false once the recording is exhausted.
func (p *Player) Next() (time.Duration, core.InputFrame, bool) {
	if p.pos >= len(p.rec.Frames) {
		return 0, core.InputFrame{}, false
	}
	f := p.rec.Frames[p.pos]
	p.pos++
	return f.Elapsed(), f.Input(), true
}

// Remaining returns how many frames are left.
func (p *Player) Remaining() int {
	return len(p.rec.Frames) - p.pos
}

// Save encodes a recording.
func Save(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	return nil
}

// Load decodes a recording.
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// SaveFile writes a recording to path.
func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a recording from path.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Result summarizes a playback.
type Result struct {
	Frames int
	Events []core.Event
	State  core.GameState
	Hash   string
}

// Run resets game with the recording's runtime and plays every frame.
func Run(game registry.Game, rec *Recording) (Result, error) {
	h, ok := game.(registry.Hasher)
	if !ok {
		return Result{}, ErrNotHashable
	}

	game.Reset(rec.Runtime())
	var res Result
	p := NewPlayer(rec)
	for {
		elapsed, in, ok := p.Next()
		if !ok {
			break
		}
		step := game.Step(elapsed, in)
		res.Events = append(res.Events, step.Events...)
		res.State = step.State
		res.Frames++
	}
	res.Hash = h.Hash()
	return res, nil
}

// Verify plays a recording and checks the final hash against the recorded
// one. Recordings without a hash only need to play back.
func Verify(game registry.Game, rec *Recording) (Result, error) {
	res, err := Run(game, rec)
	if err != nil {
		return res, err
	}
	if rec.FinalHash != "" && res.Hash != rec.FinalHash {
		return res, fmt.Errorf("%w: recorded %s, got %s", ErrMismatch, short(rec.FinalHash), short(res.Hash))
	}
	return res, nil
}

func short(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
