package proto

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// enumTable maps device numbers to names. Values outside the table are still
// accepted as plain integers.
type enumTable map[int]string

func (t enumTable) name(v int) string {
	if n, ok := t[v]; ok {
		return n
	}
	return strconv.Itoa(v)
}

func (t enumTable) parse(kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, n := range t {
		if n == s {
			return v, nil
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q, expect one of %s or a number", kind, s, strings.Join(t.names(), ", "))
	}
	return v, nil
}

func (t enumTable) names() []string {
	keys := lo.Keys(t)
	sort.Ints(keys)
	return lo.Map(keys, func(k int, _ int) string {
		return t[k]
	})
}

type ChannelType int

const (
	ChannelClock ChannelType = iota
	ChannelCloud
	ChannelVisualizer
	ChannelCustomPage
)

var channelTypes = enumTable{0: "clock", 1: "cloud", 2: "visualizer", 3: "custom"}

func (v ChannelType) String() string { return channelTypes.name(int(v)) }

func ParseChannelType(s string) (ChannelType, error) {
	v, err := channelTypes.parse("channel", s)
	return ChannelType(v), err
}

type CloudChannel int

const (
	CloudGallery CloudChannel = iota
	CloudFav
	CloudArtist
)

var cloudChannels = enumTable{0: "gallery", 1: "fav", 2: "artist"}

func (v CloudChannel) String() string { return cloudChannels.name(int(v)) }

func ParseCloudChannel(s string) (CloudChannel, error) {
	v, err := cloudChannels.parse("cloud channel", s)
	return CloudChannel(v), err
}

// Switch is an off/on setting: high light mode, mirror mode and screen power.
type Switch int

const (
	Off Switch = iota
	On
)

var switches = enumTable{0: "off", 1: "on"}

func (v Switch) String() string { return switches.name(int(v)) }

func ParseSwitch(s string) (Switch, error) {
	v, err := switches.parse("switch", s)
	return Switch(v), err
}

type HourMode int

const (
	Hour12 HourMode = iota
	Hour24
)

var hourModes = enumTable{0: "12h", 1: "24h"}

func (v HourMode) String() string { return hourModes.name(int(v)) }

func ParseHourMode(s string) (HourMode, error) {
	v, err := hourModes.parse("hour mode", s)
	return HourMode(v), err
}

type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

var temperatureUnits = enumTable{0: "c", 1: "f"}

func (v TemperatureUnit) String() string { return temperatureUnits.name(int(v)) }

func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	v, err := temperatureUnits.parse("temperature unit", s)
	return TemperatureUnit(v), err
}

type RotationAngle int

const (
	RotateNone RotationAngle = iota
	Rotate90
	Rotate180
	Rotate270
)

var rotationAngles = enumTable{0: "none", 1: "90", 2: "180", 3: "270"}

func (v RotationAngle) String() string { return rotationAngles.name(int(v)) }

// ParseRotationAngle reads "none", "90", "180" or "270". Other numbers are
// passed through as raw device values.
func ParseRotationAngle(s string) (RotationAngle, error) {
	v, err := rotationAngles.parse("rotation", s)
	return RotationAngle(v), err
}

type FileSource int

const (
	FileLocal FileSource = iota
	FileFolder
	FileURL
)

var fileSources = enumTable{0: "file", 1: "folder", 2: "url"}

func (v FileSource) String() string { return fileSources.name(int(v)) }

func ParseFileSource(s string) (FileSource, error) {
	v, err := fileSources.parse("file source", s)
	return FileSource(v), err
}

type ScrollDirection int

const (
	ScrollLeft ScrollDirection = iota
	ScrollRight
)

var scrollDirections = enumTable{0: "left", 1: "right"}

func (v ScrollDirection) String() string { return scrollDirections.name(int(v)) }

func ParseScrollDirection(s string) (ScrollDirection, error) {
	v, err := scrollDirections.parse("scroll direction", s)
	return ScrollDirection(v), err
}

type TextAlign int

const (
	AlignLeft TextAlign = iota + 1
	AlignMiddle
	AlignRight
)

var textAligns = enumTable{1: "left", 2: "middle", 3: "right"}

func (v TextAlign) String() string { return textAligns.name(int(v)) }

func ParseTextAlign(s string) (TextAlign, error) {
	v, err := textAligns.parse("text align", s)
	return TextAlign(v), err
}

// ToolAction drives the countdown and noise tools.
type ToolAction int

const (
	ToolStop ToolAction = iota
	ToolStart
)

var toolActions = enumTable{0: "stop", 1: "start"}

func (v ToolAction) String() string { return toolActions.name(int(v)) }

func ParseToolAction(s string) (ToolAction, error) {
	v, err := toolActions.parse("tool action", s)
	return ToolAction(v), err
}

type StopwatchAction int

const (
	StopwatchStop StopwatchAction = iota
	StopwatchStart
	StopwatchReset
)

var stopwatchActions = enumTable{0: "stop", 1: "start", 2: "reset"}

func (v StopwatchAction) String() string { return stopwatchActions.name(int(v)) }

func ParseStopwatchAction(s string) (StopwatchAction, error) {
	v, err := stopwatchActions.parse("stopwatch action", s)
	return StopwatchAction(v), err
}
