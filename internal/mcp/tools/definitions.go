package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Name identifies one of the tools this server exposes.
type Name string

const (
	NameListSMS       Name = "list_sms"
	NameGetLatestCode Name = "get_latest_code"
	NameGetSMS        Name = "get_sms"
)

// Names lists every tool in discovery order.
var Names = []Name{NameListSMS, NameGetLatestCode, NameGetSMS}

// Input schemas are kept raw: the builder options drop an empty "required"
// array, and clients of this server expect it on every tool.
var (
	listSMSSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "limit": {"type": "number", "description": "Maximum number of messages to return (default: 10)"},
    "from": {"type": "string", "description": "Filter by sender phone number (optional)"}
  },
  "required": []
}`)

	getLatestCodeSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "from": {"type": "string", "description": "Filter by sender (optional, e.g., 'Apple' or phone number)"},
    "pattern": {"type": "string", "description": "Regex pattern to match code (default: 4-8 digit codes)"}
  },
  "required": []
}`)

	getSMSSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "sid": {"type": "string", "description": "The message SID"}
  },
  "required": ["sid"]
}`)
)

// Definitions returns the tool descriptors advertised on tools/list. A fresh
// slice is built on each call so callers cannot alter the listing.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		readOnly(mcp.NewToolWithRawSchema(string(NameListSMS),
			"List recent SMS messages received on the Twilio number",
			listSMSSchema,
		)),
		readOnly(mcp.NewToolWithRawSchema(string(NameGetLatestCode),
			"Extract the latest 2FA/verification code from recent SMS messages",
			getLatestCodeSchema,
		)),
		readOnly(mcp.NewToolWithRawSchema(string(NameGetSMS),
			"Get a specific SMS message by its SID",
			getSMSSchema,
		)),
	}
}

// readOnly sets the annotations only; schema options do not apply to raw-schema tools.
func readOnly(t mcp.Tool) mcp.Tool {
	for _, opt := range []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	} {
		opt(&t)
	}
	return t
}
