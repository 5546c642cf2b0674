package pixoo

import (
	"fmt"
	"image/color"
	"time"

	"pixoo/pkg/proto"
)

// TextAnimation is a scrolling text overlay. Up to 20 ids can be shown at the
// same time.
type TextAnimation struct {
	ID        int
	X, Y      int
	Direction proto.ScrollDirection
	Font      int
	Width     int
	Speed     time.Duration
	Text      string
	Color     color.Color
	Align     proto.TextAlign
}

// NewTextAnimation returns white, left aligned text scrolling left at 100ms a
// step.
func NewTextAnimation(text string) *TextAnimation {
	return &TextAnimation{
		Direction: proto.ScrollLeft,
		Width:     16,
		Speed:     100 * time.Millisecond,
		Text:      text,
		Color:     color.White,
		Align:     proto.AlignLeft,
	}
}

func (t *TextAnimation) request() *proto.SendTextRequest {
	return &proto.SendTextRequest{
		Head:       proto.NewHead(proto.CommandAnimationSendText),
		TextID:     t.ID,
		X:          t.X,
		Y:          t.Y,
		Dir:        int(t.Direction),
		Font:       t.Font,
		TextWidth:  t.Width,
		Speed:      int(t.Speed / time.Millisecond),
		TextString: t.Text,
		Color:      hexColor(t.Color),
		Align:      int(t.Align),
	}
}

func hexColor(c color.Color) string {
	if c == nil {
		c = color.White
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
