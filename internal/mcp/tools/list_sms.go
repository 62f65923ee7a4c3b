package tools

import (
	"context"

	"github.com/roivaz/twilio-sms-mcp/internal/mcp/tools/types"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

type ListSMSHandler struct {
	Provider    sms.Provider
	PhoneNumber string
}

func (h *ListSMSHandler) Handle(ctx context.Context, args map[string]any) (string, error) {
	limit, err := optionalLimit(args, "limit", DefaultListLimit)
	if err != nil {
		return "", err
	}
	from, err := optionalString(args, "from")
	if err != nil {
		return "", err
	}

	messages, err := h.Provider.ListMessages(ctx, sms.ListFilter{To: h.PhoneNumber, From: from, Limit: limit})
	if err != nil {
		return "", err
	}

	results := make([]types.MessageSummary, 0, len(messages))
	for _, msg := range messages {
		results = append(results, types.MessageSummary{
			SID:      msg.SID,
			From:     msg.From,
			Body:     msg.Body,
			DateSent: sms.ISOTimestamp(msg.DateSent),
			Status:   msg.Status,
		})
	}
	return prettyJSON(results)
}
