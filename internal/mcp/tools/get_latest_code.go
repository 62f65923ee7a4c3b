package tools

import (
	"context"
	"regexp"

	"github.com/roivaz/twilio-sms-mcp/internal/mcp/tools/types"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

type GetLatestCodeHandler struct {
	Provider    sms.Provider
	PhoneNumber string
}

func (h *GetLatestCodeHandler) Handle(ctx context.Context, args map[string]any) (string, error) {
	from, err := optionalString(args, "from")
	if err != nil {
		return "", err
	}
	expr, err := optionalString(args, "pattern")
	if err != nil {
		return "", err
	}

	// Compiled before listing so a bad pattern costs no Twilio request; if both
	// would fail, the pattern error is the one reported.
	pattern := DefaultCodePattern
	if expr != "" {
		pattern, err = regexp.Compile(expr)
		if err != nil {
			return "", err
		}
	}

	messages, err := h.Provider.ListMessages(ctx, sms.ListFilter{To: h.PhoneNumber, From: from, Limit: CodeScanLimit})
	if err != nil {
		return "", err
	}

	code, msg, ok := FindCode(messages, pattern)
	if !ok {
		return NoCodeFoundMessage, nil
	}
	return prettyJSON(types.VerificationCode{
		Code:     code,
		From:     msg.From,
		Body:     msg.Body,
		DateSent: sms.ISOTimestamp(msg.DateSent),
	})
}
