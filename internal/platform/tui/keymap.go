package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its last
// press. Terminals report no key release, so a held key is recognized by its
// auto-repeat; the window has to cover the initial repeat delay.
const DefaultHoldTicks = 32

// SeatKeys are the bindings of one local player.
type SeatKeys struct {
	Left  key.Binding
	Right key.Binding
	Stop  key.Binding
	Shoot key.Binding
}

// KeyMap holds every binding used while a match is running.
type KeyMap struct {
	Seats   [2]SeatKeys
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Seats[0].Left, k.Seats[0].Right, k.Seats[0].Shoot, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Seats[0].Left, k.Seats[0].Right, k.Seats[0].Stop, k.Seats[0].Shoot},
		{k.Seats[1].Left, k.Seats[1].Right, k.Seats[1].Stop, k.Seats[1].Shoot},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows and space for player 1,
// A/D and W for player 2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Seats: [2]SeatKeys{
			{
				Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P1 left")),
				Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P1 right")),
				Stop:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P1 stop")),
				Shoot: key.NewBinding(key.WithKeys(" ", "up"), key.WithHelp("space", "P1 shoot")),
			},
			{
				Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P2 left")),
				Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P2 right")),
				Stop:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P2 stop")),
				Shoot: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P2 shoot")),
			},
		},
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// holdLatch remembers a movement key until its repeats stop arriving.
type holdLatch struct {
	dir   core.Action
	until uint64
}

// KeyMapper translates Bubble Tea key messages to per-seat game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys      KeyMap
	seats     int
	holdTicks uint64
	latch     [2]holdLatch
}

// NewKeyMapper creates a key mapper with default bindings for the given
// number of seats.
func NewKeyMapper(seats int) *KeyMapper {
	return &KeyMapper{
		keys:      DefaultKeyMap(),
		seats:     min(max(seats, 1), 2),
		holdTicks: DefaultHoldTicks,
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// SetHoldTicks changes the key hold window.
func (km *KeyMapper) SetHoldTicks(ticks int) {
	km.holdTicks = uint64(max(ticks, 1)) //#nosec G115 -- clamped positive
}

// MapKey records the actions a key press triggers at the given tick into
// frame. Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, tick uint64, frame *core.MultiInputFrame) (isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return true
	case key.Matches(msg, km.keys.Pause):
		frame.Set(core.Player1, core.ActionPause)
		return false
	case key.Matches(msg, km.keys.Restart):
		frame.Set(core.Player1, core.ActionRestart)
		return false
	case key.Matches(msg, km.keys.Back):
		frame.Set(core.Player1, core.ActionBack)
		return false
	}

	for seat := range km.seats {
		id := core.PlayerID(seat)
		sk := km.keys.Seats[seat]
		switch {
		case key.Matches(msg, sk.Left):
			km.hold(id, core.ActionLeft, tick, frame)
		case key.Matches(msg, sk.Right):
			km.hold(id, core.ActionRight, tick, frame)
		case key.Matches(msg, sk.Stop):
			km.latch[seat] = holdLatch{}
			frame.Set(id, core.ActionStop)
		case key.Matches(msg, sk.Shoot):
			frame.Set(id, core.ActionShoot)
		default:
			continue
		}
		return false
	}
	return false
}

func (km *KeyMapper) hold(id core.PlayerID, dir core.Action, tick uint64, frame *core.MultiInputFrame) {
	km.latch[id] = holdLatch{dir: dir, until: tick + km.holdTicks}
	frame.Set(id, dir)
}

// Expire emits a stop for every seat whose movement key has not repeated
// within the hold window.
func (km *KeyMapper) Expire(tick uint64, frame *core.MultiInputFrame) {
	for seat := range km.seats {
		l := &km.latch[seat]
		if l.dir != core.ActionNone && tick >= l.until {
			*l = holdLatch{}
			frame.Set(core.PlayerID(seat), core.ActionStop)
		}
	}
}

// Reset forgets all held keys.
func (km *KeyMapper) Reset() {
	km.latch = [2]holdLatch{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MenuKeyMap defines the key bindings of the menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Scoreboard, k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/→", "change")),
		Right:      key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "change")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (k MenuKeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Left):
		return MenuActionLeft
	case key.Matches(msg, k.Right):
		return MenuActionRight
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
