package album

import (
	"sync"
	"time"

	"github.com/moolex/wallhaven-go/api"

	"pixoo/pkg/mixer"
)

func NewParams(size int) *Params {
	p := &Params{
		ErrorWait:  3 * time.Second,
		ChangeWait: 5 * time.Minute,
		Brightness: 50,
		Fit:        mixer.Stretch,
		wakeup:     make(chan struct{}, 1),
		reset:      make(chan time.Duration, 1),
		size:       size,
	}
	return p
}

// Params is the slideshow state shared between the player loop and the bot.
type Params struct {
	l sync.RWMutex

	ErrorWait  time.Duration
	ChangeWait time.Duration
	Brightness int
	Fit        mixer.FitMode

	wakeup chan struct{}
	reset  chan time.Duration
	paused bool
	size   int
	api    *api.API
	q      *api.QueryCond
	r      *api.QueryResult
}

func (p *Params) Size() int {
	return p.size
}

func (p *Params) Paused() bool {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.paused
}

func (p *Params) WakeupChan() <-chan struct{} {
	return p.wakeup
}

func (p *Params) ResetChan() <-chan time.Duration {
	return p.reset
}

func (p *Params) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

// Wakeup resumes the slideshow and shows the next wallpaper right away.
func (p *Params) Wakeup() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

// Reset postpones the next change by dur.
func (p *Params) Reset(dur time.Duration) {
	select {
	case p.reset <- dur:
	default:
	}
}

func (p *Params) SetAPI(api *api.API) {
	p.api = api
}

func (p *Params) GetQuery() *api.QueryCond {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.q
}

func (p *Params) GetResult() *api.QueryResult {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.r
}

func (p *Params) SetQuery(q *api.QueryCond) {
	p.l.Lock()
	defer p.l.Unlock()
	p.q = q
}

func (p *Params) SetResult(r *api.QueryResult) {
	p.l.Lock()
	defer p.l.Unlock()
	p.r = r
}

func (p *Params) UpdateQuery(fn func(q *api.QueryCond)) {
	p.l.Lock()
	defer p.l.Unlock()
	fn(p.q)
}

// Querying runs the current query and wakes the player up with the result.
func (p *Params) Querying() error {
	p.l.Lock()
	ret, err := p.api.Query(p.q)
	if err == nil {
		p.r = ret
	}
	p.l.Unlock()

	if err != nil {
		return err
	}

	p.Wakeup()
	return nil
}
