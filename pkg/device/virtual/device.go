package virtual

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pixoo/pkg/proto"
)

// New returns a device that lives in memory. It answers the commands a Pixoo
// answers and records everything it was sent.
func New(logger *zap.Logger, opts ...Option) *Device {
	d := &Device{
		l:          logger,
		nextID:     1,
		brightness: 100,
		frames:     make(map[int]map[int][]byte),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Device struct {
	l *zap.Logger

	mu         sync.Mutex
	payloads   []string
	commands   []string
	channel    int
	brightness int
	screen     int
	nextID     int
	frames     map[int]map[int][]byte
	texts      map[int]string

	// options
	failCode  int
	failAfter int
	postErr   error
}

var _ proto.Transport = (*Device)(nil)

type fragment struct {
	proto.Head
	CommandList []json.RawMessage `json:"CommandList"`
}

func (d *Device) Post(ctx context.Context, path string, body string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.postErr != nil {
		return nil, d.postErr
	}
	if path != proto.PostPath {
		return nil, &proto.StatusError{StatusCode: 404, Body: "not found"}
	}

	d.payloads = append(d.payloads, body)

	var f fragment
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		return nil, errors.Wrap(err, "virtual device: bad request")
	}

	if d.failCode != 0 && len(d.payloads) > d.failAfter {
		d.l.With(zap.Int("code", d.failCode)).Info("reject")
		return json.Marshal(map[string]int{"error_code": d.failCode})
	}

	if f.Command != proto.CommandBatchExecute {
		return d.handle(f.Command, []byte(body))
	}

	for _, raw := range f.CommandList {
		var sub proto.Head
		if err := json.Unmarshal(raw, &sub); err != nil {
			return nil, errors.Wrap(err, "virtual device: bad command in list")
		}
		if _, err := d.handle(sub.Command, raw); err != nil {
			return nil, err
		}
	}

	return ok(nil)
}

// Payloads returns every request body received so far.
func (d *Device) Payloads() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.payloads...)
}

// Commands returns the names of all executed commands, batches unrolled.
func (d *Device) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.commands...)
}

// Frames returns the frames received for animation id keyed by offset.
func (d *Device) Frames(id int) map[int][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[int][]byte, len(d.frames[id]))
	for k, v := range d.frames[id] {
		out[k] = v
	}
	return out
}

func (d *Device) Brightness() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}

func (d *Device) Channel() proto.ChannelType {
	d.mu.Lock()
	defer d.mu.Unlock()
	return proto.ChannelType(d.channel)
}

func (d *Device) Screen() proto.Switch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return proto.Switch(d.screen)
}
