package service

// Device is a Pixoo registered from the same public address as the caller.
type Device struct {
	Name      string `json:"DeviceName"`
	ID        uint64 `json:"DeviceId"`
	PrivateIP string `json:"DevicePrivateIP"`
}

type Clock struct {
	ID   int    `json:"ClockId"`
	Name string `json:"Name"`
}

type ClockPage struct {
	Total  int     `json:"TotalNum"`
	Clocks []Clock `json:"DialList"`
}

type Font struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Width   string `json:"width"`
	Height  string `json:"high"`
	Charset string `json:"charset"`
	Type    int    `json:"type"`
}

type clockListRequest struct {
	DialType string `json:"DialType"`
	Page     int    `json:"Page"`
}
