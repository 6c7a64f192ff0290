package pang

// PowerUpOption identifies the effect of a power-up.
type PowerUpOption int

const (
	PowerUpScore   PowerUpOption = 1 // Score bonus for the collector
	PowerUpSticky  PowerUpOption = 2 // Sticky harpoon for the rest of the run
	PowerUpPenalty PowerUpOption = 3 // Takes time off the clock
)

// powerUpOptions is the number of options drawn from.
const powerUpOptions = 3

// String returns the name of the option.
func (o PowerUpOption) String() string {
	switch o {
	case PowerUpScore:
		return "Score"
	case PowerUpSticky:
		return "Sticky"
	case PowerUpPenalty:
		return "Penalty"
	default:
		return "?"
	}
}

// PowerUp is a pickup dropped by a split bubble. X and Y are its center.
type PowerUp struct {
	X, Y   float64
	Size   float64
	Option PowerUpOption
}

func (p *PowerUp) left() float64 { return p.X - p.Size/2 }
func (p *PowerUp) top() float64  { return p.Y - p.Size/2 }

// update drops the power-up until it rests on the ground.
func (p *PowerUp) update(fall, groundY float64) {
	bottom := p.Y + p.Size/2
	if bottom >= groundY {
		return
	}
	p.Y += fall
	if p.Y+p.Size/2 > groundY {
		p.Y = groundY - p.Size/2
	}
}
