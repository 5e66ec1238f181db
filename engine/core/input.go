package core

// Input tracks the latest key and pointer state from the event stream.
// Scroll offsets accumulate between polls so a fixed-tick update never
// drops wheel motion delivered mid-frame.
type Input struct {
	keys             map[Key]bool
	mouseX, mouseY   float64
	scrollX, scrollY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Wheel returns the scroll offsets accumulated since the last call and
// resets them. Poll once per update tick.
func (in *Input) Wheel() (float64, float64) {
	x, y := in.scrollX, in.scrollY
	in.scrollX, in.scrollY = 0, 0
	return x, y
}
