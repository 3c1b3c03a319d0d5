package curveedit

import (
	"fmt"
	"testing"

	"cogentcore.org/core/events"

	"github.com/grinlau18/curveedit/curve"
)

func TestZZDebug(t *testing.T) {
	ce := sizedEditor()
	mp := ce.mapper()
	fmt.Println("valid:", mp.valid(), "size:", mp.size, "pad:", mp.pad)
	fmt.Println("points:", ce.Curve.Points())
	e := mouseAt(events.SlideStart, mp, curve.Pt(0, 0))
	fmt.Println("event type:", e.Type(), "pos:", e.Pos())
	called := false
	ce.On(events.SlideStart, func(e events.Event) { called = true })
	ce.HandleEvent(e)
	fmt.Println("listener called:", called, "dragging:", ce.draggingPoint)
	i, ins := ce.press(e)
	fmt.Println("press direct:", i, ins)
}
