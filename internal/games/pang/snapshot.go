package pang

import "math"

// Snapshot is a flat copy of the match state used to compare runs.
// Floats are stored as their IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Tick       uint64
	State      int
	LevelIndex int
	Level      int
	Remaining  int64
	Adjusted   int64
	RNGState   uint64

	// Each player is 8 values: Seat, X, Movement, Lives, Score, Sticky, ArrowActive, ArrowTip
	PlayerData []uint64
	// Each bubble is 5 values: X, Y, R, DX, DY
	BubbleData []uint64
	// Each wall is 4 values: X, H, Kind, Disappearing
	WallData []uint64
	// Each power-up is 3 values: X, Y, Option
	PowerUpData []uint64
}

func fbits(v float64) uint64 { return math.Float64bits(v) }

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot captures the current match state.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       m.ticks,
		State:      int(m.state),
		LevelIndex: m.loader.index,
		Level:      m.level,
		Remaining:  m.timer.remaining,
		Adjusted:   m.timer.adjusted,
		RNGState:   m.rng.state,
	}

	for _, p := range m.players {
		snap.PlayerData = append(snap.PlayerData,
			uint64(p.Seat), //#nosec G115 -- seat is 0 or 1
			fbits(p.X),
			uint64(p.Movement), //#nosec G115 -- enum value
			uint64(p.Lives),    //#nosec G115 -- hash input
			uint64(p.Score),    //#nosec G115 -- hash input
			boolBit(p.Sticky),
			boolBit(p.Arrow.Active),
			fbits(p.Arrow.TipY),
		)
	}
	for _, b := range m.bubbles {
		snap.BubbleData = append(snap.BubbleData, fbits(b.X), fbits(b.Y), fbits(b.R), fbits(b.DX), fbits(b.DY))
	}
	for _, w := range m.walls {
		snap.WallData = append(snap.WallData, fbits(w.X), fbits(w.H), uint64(w.Kind), boolBit(w.Disappearing)) //#nosec G115 -- enum value
	}
	for _, pu := range m.powerUps {
		snap.PowerUpData = append(snap.PowerUpData, fbits(pu.X), fbits(pu.Y), uint64(pu.Option)) //#nosec G115 -- enum value
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Adjusted)   //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	for _, data := range [][]uint64{snap.PlayerData, snap.BubbleData, snap.WallData, snap.PowerUpData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}
	return h
}
