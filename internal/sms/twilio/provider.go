// Package twilio implements sms.Provider on top of the Twilio REST API.
package twilio

import (
	"context"
	"errors"
	"fmt"
	"time"

	twiliogo "github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/roivaz/twilio-sms-mcp/internal/credentials"
	"github.com/roivaz/twilio-sms-mcp/internal/logging"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

// messageAPI is the subset of the generated v2010 service the provider calls.
type messageAPI interface {
	ListMessage(params *openapi.ListMessageParams) ([]openapi.ApiV2010Message, error)
	FetchMessage(sid string, params *openapi.FetchMessageParams) (*openapi.ApiV2010Message, error)
}

// Provider reads the account's message log.
type Provider struct {
	api messageAPI
	log logging.Logger
}

// New builds a Provider authenticated with the account SID and auth token.
func New(creds credentials.Credentials, log logging.Logger) *Provider {
	client := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: creds.AccountSID,
		Password: creds.AuthToken,
	})
	return newProvider(client.Api, log)
}

func newProvider(api messageAPI, log logging.Logger) *Provider {
	return &Provider{api: api, log: log.WithName("twilio")}
}

// ListMessages lists messages matching filter. The twilio-go client does not
// take a context; ctx is only checked before the call is issued.
func (p *Provider) ListMessages(ctx context.Context, filter sms.ListFilter) ([]sms.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := &openapi.ListMessageParams{}
	if filter.To != "" {
		params.SetTo(filter.To)
	}
	if filter.From != "" {
		params.SetFrom(filter.From)
	}
	if filter.Limit > 0 {
		params.SetLimit(filter.Limit)
	}

	p.log.Debug("listing messages", "to", filter.To, "from", filter.From, "limit", filter.Limit)
	records, err := p.api.ListMessage(params)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", describe(err))
	}

	out := make([]sms.Message, 0, len(records))
	for _, rec := range records {
		out = append(out, p.toMessage(rec))
	}
	return out, nil
}

// FetchMessage returns one message by SID. Unknown SIDs come back from Twilio
// as a 404 and surface as an error.
func (p *Provider) FetchMessage(ctx context.Context, sid string) (sms.Message, error) {
	if err := ctx.Err(); err != nil {
		return sms.Message{}, err
	}
	p.log.Debug("fetching message", "sid", sid)
	rec, err := p.api.FetchMessage(sid, &openapi.FetchMessageParams{})
	if err != nil {
		return sms.Message{}, fmt.Errorf("fetch message %s: %w", sid, describe(err))
	}
	if rec == nil {
		return sms.Message{}, fmt.Errorf("fetch message %s: empty response", sid)
	}
	return p.toMessage(*rec), nil
}

func (p *Provider) toMessage(rec openapi.ApiV2010Message) sms.Message {
	msg := sms.Message{
		SID:    deref(rec.Sid),
		From:   deref(rec.From),
		To:     deref(rec.To),
		Body:   deref(rec.Body),
		Status: deref(rec.Status),
	}
	if raw := deref(rec.DateSent); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			p.log.Debug("ignoring unparsable date_sent", "sid", msg.SID, "value", raw)
		} else {
			msg.DateSent = &ts
		}
	}
	return msg
}

// Twilio renders dates as RFC 2822 ("Thu, 30 Jul 2015 20:12:31 +0000").
var dateLayouts = []string{time.RFC1123Z, time.RFC1123, time.RFC3339}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// describe replaces the SDK's verbose REST error text with Twilio's own message.
func describe(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) && restErr.Message != "" {
		return &APIError{Status: restErr.Status, Code: restErr.Code, Message: restErr.Message}
	}
	return err
}

// APIError is a non-2xx answer from the Twilio API.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d, code %d)", e.Message, e.Status, e.Code)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
