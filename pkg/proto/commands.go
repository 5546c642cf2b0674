package proto

// Device command names.
const (
	CommandChannelSelect           = "Channel/SetIndex"
	CommandChannelGetCurrent       = "Channel/GetIndex"
	CommandChannelSelectClock      = "Channel/SetClockSelectId"
	CommandChannelGetClockInfo     = "Channel/GetClockInfo"
	CommandChannelSelectCloud      = "Channel/CloudIndex"
	CommandChannelSelectVisualizer = "Channel/SetEqPosition"
	CommandChannelSelectCustomPage = "Channel/SetCustomPageIndex"

	CommandSystemGetSettings     = "Channel/GetAllConf"
	CommandSystemGetTime         = "Device/GetDeviceTime"
	CommandSystemSetBrightness   = "Channel/SetBrightness"
	CommandSystemSetTime         = "Device/SetUTC"
	CommandSystemSetHighLight    = "Device/SetHighLightMode"
	CommandSystemSetHourMode     = "Device/SetTime24Flag"
	CommandSystemSetMirrorMode   = "Device/SetMirrorMode"
	CommandSystemSetRotation     = "Device/SetScreenRotationAngle"
	CommandSystemSetScreenPower  = "Channel/OnOffScreen"
	CommandSystemSetTemperature  = "Device/SetDisTempMode"
	CommandSystemSetTimeZone     = "Sys/TimeZone"
	CommandSystemSetWeatherArea  = "Sys/LogAndLat"
	CommandSystemSetWhiteBalance = "Device/SetWhiteBalance"

	CommandToolCountdown  = "Tools/SetTimer"
	CommandToolNoise      = "Tools/SetNoiseStatus"
	CommandToolScoreboard = "Tools/SetScoreBoard"
	CommandToolStopwatch  = "Tools/SetStopWatch"

	CommandAnimationPlayGif     = "Device/PlayTFGif"
	CommandAnimationGetNextID   = "Draw/GetHttpGifId"
	CommandAnimationResetNextID = "Draw/ResetHttpGifId"
	CommandAnimationSendFrame   = "Draw/SendHttpGif"
	CommandAnimationSendText    = "Draw/SendHttpText"
	CommandAnimationClearText   = "Draw/ClearHttpText"
	CommandAnimationPlayBuzzer  = "Device/PlayBuzzer"

	CommandBatchExecute        = "Draw/CommandList"
	CommandBatchExecuteFromURL = "Draw/UseHTTPCommandSource"
)

// Head names the command. Every request embeds it so the field sits next to
// the command arguments in the same JSON object.
type Head struct {
	Command string `json:"Command"`
}

func NewHead(command string) Head {
	return Head{Command: command}
}

// Request is anything that can be serialized into one fragment.
type Request interface {
	CommandName() string
}

func (h Head) CommandName() string {
	return h.Command
}

type SelectChannelRequest struct {
	Head
	SelectIndex int `json:"SelectIndex"`
}

type SelectClockRequest struct {
	Head
	ClockID int `json:"ClockId"`
}

type SelectCloudChannelRequest struct {
	Head
	Index int `json:"Index"`
}

type SelectVisualizerRequest struct {
	Head
	EqPosition int `json:"EqPosition"`
}

type SelectCustomPageRequest struct {
	Head
	CustomPageIndex int `json:"CustomPageIndex"`
}

type BrightnessRequest struct {
	Head
	Brightness int `json:"Brightness"`
}

type SetTimeRequest struct {
	Head
	UTC int64 `json:"Utc"`
}

// ModeRequest serves every system setting that takes a single Mode value.
type ModeRequest struct {
	Head
	Mode int `json:"Mode"`
}

type ScreenPowerRequest struct {
	Head
	OnOff int `json:"OnOff"`
}

type TimeZoneRequest struct {
	Head
	TimeZoneValue string `json:"TimeZoneValue"`
}

type WeatherAreaRequest struct {
	Head
	Longitude string `json:"Longitude"`
	Latitude  string `json:"Latitude"`
}

type WhiteBalanceRequest struct {
	Head
	R int `json:"RValue"`
	G int `json:"GValue"`
	B int `json:"BValue"`
}

type CountdownRequest struct {
	Head
	Minute int `json:"Minute"`
	Second int `json:"Second"`
	Status int `json:"Status"`
}

type NoiseRequest struct {
	Head
	NoiseStatus int `json:"NoiseStatus"`
}

type ScoreboardRequest struct {
	Head
	BlueScore int `json:"BlueScore"`
	RedScore  int `json:"RedScore"`
}

type StopwatchRequest struct {
	Head
	Status int `json:"Status"`
}

type PlayGifRequest struct {
	Head
	FileType int    `json:"FileType"`
	FileName string `json:"FileName"`
}

// SendFrameRequest carries one animation frame. PicData is base64 encoded on
// the wire.
type SendFrameRequest struct {
	Head
	PicNum    int    `json:"PicNum"`
	PicWidth  int    `json:"PicWidth"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicId"`
	PicSpeed  int    `json:"PicSpeed"`
	PicData   []byte `json:"PicData"`
}

// SendTextRequest mixes lower case and pascal case keys, the device expects
// exactly these.
type SendTextRequest struct {
	Head
	TextID     int    `json:"TextId"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Dir        int    `json:"dir"`
	Font       int    `json:"font"`
	TextWidth  int    `json:"TextWidth"`
	Speed      int    `json:"speed"`
	TextString string `json:"TextString"`
	Color      string `json:"color"`
	Align      int    `json:"align"`
}

type PlayBuzzerRequest struct {
	Head
	ActiveTimeInCycle int `json:"ActiveTimeInCycle"`
	OffTimeInCycle    int `json:"OffTimeInCycle"`
	PlayTotalTime     int `json:"PlayTotalTime"`
}

type CommandURLRequest struct {
	Head
	CommandURL string `json:"CommandUrl"`
}
