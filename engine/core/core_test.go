package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTracksState(t *testing.T) {
	in := NewInput()

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyS))

	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))

	in.Handle(EventMouseMove{X: 3, Y: 7})
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 7.0, y)
}

func TestInputAccumulatesScroll(t *testing.T) {
	in := NewInput()

	in.Handle(EventScroll{Xoff: 1, Yoff: -2})
	in.Handle(EventScroll{Yoff: 0.5})

	x, y := in.Wheel()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.5, y)

	// Wheel consumes the accumulated offsets.
	x, y = in.Wheel()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

type recLayer struct {
	id      int
	log     *[]int
	handles bool
}

func (l recLayer) OnAttach(*Engine)          { *l.log = append(*l.log, l.id) }
func (l recLayer) OnDetach(*Engine)          { *l.log = append(*l.log, -l.id) }
func (l recLayer) OnUpdate(*Engine, float64) { *l.log = append(*l.log, l.id) }
func (l recLayer) OnRender(*Engine, float64) { *l.log = append(*l.log, l.id) }
func (l recLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, l.id)
	return l.handles
}

func TestLayerStackHookOrder(t *testing.T) {
	var log []int
	var ls LayerStack
	ls.Push(recLayer{id: 1, log: &log})
	ls.Push(recLayer{id: 2, log: &log})
	ls.Push(recLayer{id: 3, log: &log})

	ls.Update(nil, 0)
	assert.Equal(t, []int{1, 2, 3}, log)

	log = nil
	ls.Render(nil, 0)
	assert.Equal(t, []int{1, 2, 3}, log)

	// Teardown runs top-first.
	log = nil
	ls.DetachAll(nil)
	assert.Equal(t, []int{-3, -2, -1}, log)

	top, ok := ls.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, top.(recLayer).id)
}

func TestLayerStackDispatch(t *testing.T) {
	var log []int
	var ls LayerStack
	ls.Push(recLayer{id: 1, log: &log})
	ls.Push(recLayer{id: 2, log: &log, handles: true})
	ls.Push(recLayer{id: 3, log: &log})

	// Top-down; the handling layer stops propagation before layer 1.
	handled := ls.Dispatch(nil, EventCloseRequested{})
	assert.True(t, handled)
	assert.Equal(t, []int{3, 2}, log)

	log = nil
	ls.Pop()
	ls.Pop()
	handled = ls.Dispatch(nil, EventCloseRequested{})
	assert.False(t, handled)
	assert.Equal(t, []int{1}, log)
}
