package models

// ValidationRequest carries the user-supplied bot token and channel
// identifier. Neither field is persisted; both are forwarded once to the
// messaging authority and discarded.
type ValidationRequest struct {
	BotToken  string `json:"bot_token" example:"123456:ABC-DEF1234ghIkl"`
	ChannelID string `json:"channel_id" example:"-1001234567890"`
}

// ValidationSubject identifies what was validated on success.
type ValidationSubject struct {
	BotUsername  string `json:"bot_username" example:"my_project_bot"`
	ChannelTitle string `json:"channel_title" example:"My Channel"`
}

// ValidationVerdict is the immutable, single-use result of one validation
// call. The error string is rendered verbatim by the dashboard.
type ValidationVerdict struct {
	Valid   bool               `json:"valid"`
	Error   string             `json:"error,omitempty"`
	Subject *ValidationSubject `json:"subject,omitempty"`
}
