package scene

import "github.com/vovakirdan/tui-pang/internal/games/pang"

// MoveKeys tracks the held direction keys of one seat. The most recent press
// wins while both are held, and releasing it falls back to the other key.
type MoveKeys struct {
	left, right bool
	last        pang.Movement
}

// Press records a key press and returns the resulting movement.
func (k *MoveKeys) Press(dir pang.Movement) pang.Movement {
	switch dir {
	case pang.MoveLeft:
		k.left = true
	case pang.MoveRight:
		k.right = true
	}
	k.last = dir
	return k.intent()
}

// Release records a key release and returns the resulting movement.
func (k *MoveKeys) Release(dir pang.Movement) pang.Movement {
	switch dir {
	case pang.MoveLeft:
		k.left = false
	case pang.MoveRight:
		k.right = false
	}
	return k.intent()
}

func (k *MoveKeys) intent() pang.Movement {
	switch {
	case k.left && k.right:
		return k.last
	case k.left:
		return pang.MoveLeft
	case k.right:
		return pang.MoveRight
	}
	return pang.MoveStationary
}
