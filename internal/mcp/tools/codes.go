package tools

import (
	"regexp"

	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

const (
	// CodeScanLimit is how many recent messages get_latest_code inspects.
	CodeScanLimit = 20
	// DefaultListLimit is the list_sms page size when none is given.
	DefaultListLimit = 10

	NoCodeFoundMessage = "No verification code found in recent messages."
)

// DefaultCodePattern matches a standalone run of 4 to 8 digits.
var DefaultCodePattern = regexp.MustCompile(`\b(\d{4,8})\b`)

// FindCode returns the code from the first message whose body matches re.
// Messages are scanned in the given order and scanning stops at the first hit.
// The code is capture group 1 when it matched something, else the whole match.
func FindCode(messages []sms.Message, re *regexp.Regexp) (string, sms.Message, bool) {
	for _, msg := range messages {
		m := re.FindStringSubmatch(msg.Body)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return m[1], msg, true
		}
		return m[0], msg, true
	}
	return "", sms.Message{}, false
}
