package tools

import (
	"context"

	"github.com/roivaz/twilio-sms-mcp/internal/mcp/tools/types"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

type GetSMSHandler struct {
	Provider sms.Provider
}

func (h *GetSMSHandler) Handle(ctx context.Context, args map[string]any) (string, error) {
	sid, err := requiredString(args, "sid")
	if err != nil {
		return "", err
	}
	msg, err := h.Provider.FetchMessage(ctx, sid)
	if err != nil {
		return "", err
	}
	return prettyJSON(types.MessageDetail{
		SID:      msg.SID,
		From:     msg.From,
		To:       msg.To,
		Body:     msg.Body,
		DateSent: sms.ISOTimestamp(msg.DateSent),
		Status:   msg.Status,
	})
}
