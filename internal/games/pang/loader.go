package pang

import (
	"github.com/vovakirdan/tui-pang/internal/levels"
)

// levelLoader tracks the level table and the index currently loaded.
type levelLoader struct {
	levels []levels.Descriptor
	index  int
}

func newLevelLoader(table []levels.Descriptor) *levelLoader {
	return &levelLoader{levels: table}
}

func (l *levelLoader) at(index int) (levels.Descriptor, bool) {
	if index < 0 || index >= len(l.levels) {
		return levels.Descriptor{}, false
	}
	return l.levels[index], true
}

func (l *levelLoader) hasNext() bool {
	return l.index+1 < len(l.levels)
}

// LoadLevel replaces the bubbles and extra walls with the layout of the
// level at index and reports the level number to the UI sink.
// It returns false if index is outside the level table.
func (m *Manager) LoadLevel(index int) bool {
	d, ok := m.loader.at(index)
	if !ok {
		return false
	}
	m.applyLevel(d)
	m.loader.index = index
	m.ui.UpdateLevel(m.level)
	m.log.Debug("level loaded", "index", index, "level", d.Level, "bubbles", len(d.Bubbles), "walls", len(m.walls))
	return true
}

// LoadNextLevel advances to the next level and restarts the timer. Past the
// last level it does nothing: the match continues until time runs out or no
// players remain.
func (m *Manager) LoadNextLevel() {
	if !m.loader.hasNext() {
		return
	}
	m.LoadLevel(m.loader.index + 1)
	m.timer.reset()
	m.log.Info("level advanced", "level", m.level)
}

func (m *Manager) applyLevel(d levels.Descriptor) {
	m.background = d.BackgroundID
	m.level = d.Level
	m.wallPresent = d.IsWallPresent

	m.bubbles = make([]*Bubble, 0, len(d.Bubbles))
	for _, spec := range d.Bubbles {
		m.bubbles = append(m.bubbles, newBubble(spec.CenterX, spec.CenterY, spec.Radius,
			m.cfg.Physics.BubbleDX, m.cfg.Physics.BubbleDY))
	}

	// isWallPresent is only reported; every listed wall is built.
	m.walls = m.walls[:0]
	for _, x := range d.WallsPosX {
		m.walls = append(m.walls, newWall(x, m.cfg.World.WallWidth, m.arena.groundY, WallLevel))
	}

	m.borders = m.arena.borders(m.cfg.World.WallWidth)
}
