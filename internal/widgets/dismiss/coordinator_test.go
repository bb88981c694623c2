package dismiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	regionA = Rect{X: 0, Y: 0, Width: 100, Height: 50}
	regionB = Rect{X: 200, Y: 0, Width: 100, Height: 50}
)

func TestPointerDown_InsideAClosesBOnly(t *testing.T) {
	c := NewCoordinator()
	closedA, closedB := 0, 0
	c.Register("a", regionA, func() { closedA++ })
	c.Register("b", regionB, func() { closedB++ })
	c.Open("a")
	c.Open("b")

	closed := c.PointerDown(Point{X: 10, Y: 10})

	assert.Equal(t, []string{"b"}, closed)
	assert.True(t, c.IsOpen("a"))
	assert.False(t, c.IsOpen("b"))
	assert.Equal(t, 0, closedA)
	assert.Equal(t, 1, closedB)
}

func TestPointerDown_OutsideAllClosesEverything(t *testing.T) {
	c := NewCoordinator()
	c.Register("a", regionA, nil)
	c.Register("b", regionB, nil)
	c.Open("a")
	c.Open("b")

	closed := c.PointerDown(Point{X: 500, Y: 500})
	assert.Equal(t, []string{"a", "b"}, closed)
	assert.Empty(t, c.OpenIDs())
}

func TestPointerDown_ClosedPopoversAreSkipped(t *testing.T) {
	c := NewCoordinator()
	calls := 0
	c.Register("a", regionA, func() { calls++ })

	assert.Empty(t, c.PointerDown(Point{X: 500, Y: 500}))
	assert.Equal(t, 0, calls)
}

func TestUnion_ContainsEitherPart(t *testing.T) {
	c := NewCoordinator()
	c.Register("date", Union{regionA, Rect{X: 0, Y: 60, Width: 300, Height: 300}}, nil)
	c.Open("date")

	c.PointerDown(Point{X: 150, Y: 200})
	assert.True(t, c.IsOpen("date"))

	c.PointerDown(Point{X: 150, Y: 55})
	assert.False(t, c.IsOpen("date"))
}

func TestToggleAndDeregister(t *testing.T) {
	c := NewCoordinator()
	deregister := c.Register("a", regionA, nil)

	assert.True(t, c.Toggle("a"))
	assert.False(t, c.Toggle("a"))
	assert.False(t, c.Toggle("missing"))

	c.Open("a")
	deregister()
	assert.False(t, c.IsOpen("a"))
	assert.False(t, c.Open("a"))
}

func TestStaleDeregisterKeepsNewerRegistration(t *testing.T) {
	c := NewCoordinator()
	oldDeregister := c.Register("a", regionA, nil)
	c.Register("a", regionB, nil)

	oldDeregister()
	assert.True(t, c.Open("a"))
}

func TestMount_SubscribesOnce(t *testing.T) {
	source := NewBroadcaster()
	c := NewCoordinator()
	calls := 0
	c.Register("b", regionB, func() { calls++ })

	c.Mount(source)
	c.Mount(source)
	c.Mount(source)
	assert.Equal(t, 1, source.Subscribers())

	c.Open("b")
	source.Dispatch(Point{X: 10, Y: 10})
	assert.Equal(t, 1, calls)

	c.Unmount()
	assert.Equal(t, 0, source.Subscribers())
	assert.False(t, c.Mounted())

	c.Open("b")
	source.Dispatch(Point{X: 10, Y: 10})
	assert.True(t, c.IsOpen("b"))

	// повторное монтирование после Unmount снова подписывает
	c.Mount(source)
	assert.Equal(t, 1, source.Subscribers())
}

func TestMount_BroadcastPointerDownClosesOutsidePopovers(t *testing.T) {
	source := NewBroadcaster()
	c := NewCoordinator()
	closedA, closedB := 0, 0
	c.Register("a", regionA, func() { closedA++ })
	c.Register("b", regionB, func() { closedB++ })
	c.Mount(source)
	defer c.Unmount()

	c.Open("a")
	c.Open("b")
	source.Dispatch(Point{X: 10, Y: 10})

	assert.Equal(t, 0, closedA)
	assert.Equal(t, 1, closedB)
	assert.True(t, c.IsOpen("a"))
	assert.False(t, c.IsOpen("b"))

	source.Dispatch(Point{X: 1000, Y: 1000})
	assert.Equal(t, 1, closedA)
	assert.False(t, c.IsOpen("a"))
}
