package types

// MessageSummary is one entry of a list_sms result.
type MessageSummary struct {
	SID      string  `json:"sid"`
	From     string  `json:"from"`
	Body     string  `json:"body"`
	DateSent *string `json:"dateSent,omitempty"`
	Status   string  `json:"status"`
}

// MessageDetail is the get_sms result.
type MessageDetail struct {
	SID      string  `json:"sid"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Body     string  `json:"body"`
	DateSent *string `json:"dateSent,omitempty"`
	Status   string  `json:"status"`
}

// VerificationCode is the get_latest_code result.
type VerificationCode struct {
	Code     string  `json:"code"`
	From     string  `json:"from"`
	Body     string  `json:"body"`
	DateSent *string `json:"dateSent,omitempty"`
}
