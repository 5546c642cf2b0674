package album

import (
	"sync"

	"github.com/moolex/wallhaven-go/api"
	"github.com/samber/lo"

	"pixoo/pkg/animation"
)

func NewHistory(max int) *History {
	return &History{max: max}
}

// History remembers the last shown wallpapers with their rendered animation,
// so going back does not download again.
type History struct {
	l     sync.Mutex
	max   int
	items []*HistoryLog
}

type HistoryLog struct {
	Wallpaper *api.Wallpaper
	Animation *animation.Animation
	Thumb     bool
}

func (h *History) push(item *HistoryLog) {
	h.l.Lock()
	defer h.l.Unlock()

	h.items = append(h.items, item)
	if len(h.items) > h.max {
		h.items = h.items[1:]
	}
}

func (h *History) Logs() []*HistoryLog {
	h.l.Lock()
	defer h.l.Unlock()
	return append([]*HistoryLog(nil), h.items...)
}

func (h *History) Add(wp *api.Wallpaper, anim *animation.Animation, thumb bool) {
	h.push(&HistoryLog{Wallpaper: wp, Animation: anim, Thumb: thumb})
}

func (h *History) Push(item *HistoryLog) {
	h.push(item)
}

func (h *History) Curr() *HistoryLog {
	h.l.Lock()
	defer h.l.Unlock()
	log, _ := lo.Last(h.items)
	return log
}

func (h *History) Prev() *HistoryLog {
	h.l.Lock()
	defer h.l.Unlock()
	log, _ := lo.Nth(h.items, -2)
	return log
}
