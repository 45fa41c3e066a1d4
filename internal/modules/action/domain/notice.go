package domain

// Button is one inline URL button under a notice
type Button struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Notice is an outbound chat message with optional buttons, one per row
type Notice struct {
	Text    string
	Buttons []Button
}
