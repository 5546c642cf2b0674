package animation

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// IDAuto asks the device for the next free animation id when sending.
const IDAuto = -1

// Animation is an exported, read-only snapshot of a Builder. Frames maps a
// zero-based frame index to size*size*3 bytes of RGB data with alpha already
// multiplied in.
type Animation struct {
	Size       int
	FrameCount int
	Speed      time.Duration
	Frames     map[int][]byte
}

// SpeedMs is the inter-frame delay in whole milliseconds, as sent to devices.
func (a *Animation) SpeedMs() int {
	return int(a.Speed / time.Millisecond)
}

// Offsets lists the frame indexes in ascending order.
func (a *Animation) Offsets() []int {
	keys := lo.Keys(a.Frames)
	sort.Ints(keys)
	return keys
}
