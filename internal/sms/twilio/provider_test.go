package twilio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/roivaz/twilio-sms-mcp/internal/logging"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

type fakeAPI struct {
	listParams *openapi.ListMessageParams
	records    []openapi.ApiV2010Message
	fetchSID   string
	fetched    *openapi.ApiV2010Message
	err        error
	listCalls  int
	fetchCalls int
}

func (f *fakeAPI) ListMessage(params *openapi.ListMessageParams) ([]openapi.ApiV2010Message, error) {
	f.listCalls++
	f.listParams = params
	return f.records, f.err
}

func (f *fakeAPI) FetchMessage(sid string, _ *openapi.FetchMessageParams) (*openapi.ApiV2010Message, error) {
	f.fetchCalls++
	f.fetchSID = sid
	return f.fetched, f.err
}

func strPtr(s string) *string { return &s }

func record(sid, from, body, date string) openapi.ApiV2010Message {
	rec := openapi.ApiV2010Message{
		Sid:    strPtr(sid),
		From:   strPtr(from),
		To:     strPtr("+15550001111"),
		Body:   strPtr(body),
		Status: strPtr("received"),
	}
	if date != "" {
		rec.DateSent = strPtr(date)
	}
	return rec
}

func TestListMessagesBuildsParams(t *testing.T) {
	api := &fakeAPI{records: []openapi.ApiV2010Message{
		record("SM2", "+15557654321", "newer", "Thu, 30 Jul 2015 20:12:31 +0000"),
		record("SM1", "+15557654321", "older", ""),
	}}
	p := newProvider(api, logging.Discard())

	msgs, err := p.ListMessages(context.Background(), sms.ListFilter{To: "+15550001111", From: "+15557654321", Limit: 5})
	require.NoError(t, err)

	require.NotNil(t, api.listParams)
	require.NotNil(t, api.listParams.To)
	assert.Equal(t, "+15550001111", *api.listParams.To)
	require.NotNil(t, api.listParams.From)
	assert.Equal(t, "+15557654321", *api.listParams.From)
	require.NotNil(t, api.listParams.Limit)
	assert.Equal(t, 5, *api.listParams.Limit)

	require.Len(t, msgs, 2)
	assert.Equal(t, "SM2", msgs[0].SID)
	require.NotNil(t, msgs[0].DateSent)
	assert.True(t, msgs[0].DateSent.Equal(time.Date(2015, 7, 30, 20, 12, 31, 0, time.UTC)))
	assert.Equal(t, "SM1", msgs[1].SID)
	assert.Nil(t, msgs[1].DateSent)
}

func TestListMessagesOmitsEmptyFilters(t *testing.T) {
	api := &fakeAPI{}
	p := newProvider(api, logging.Discard())

	msgs, err := p.ListMessages(context.Background(), sms.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Nil(t, api.listParams.To)
	assert.Nil(t, api.listParams.From)
}

func TestListMessagesHonoursCancelledContext(t *testing.T) {
	api := &fakeAPI{}
	p := newProvider(api, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ListMessages(ctx, sms.ListFilter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, api.listCalls)
}

func TestFetchMessage(t *testing.T) {
	rec := record("SM9", "+15557654321", "hi", "Fri, 01 Mar 2024 08:00:00 +0100")
	api := &fakeAPI{fetched: &rec}
	p := newProvider(api, logging.Discard())

	msg, err := p.FetchMessage(context.Background(), "SM9")
	require.NoError(t, err)
	assert.Equal(t, "SM9", api.fetchSID)
	assert.Equal(t, "+15550001111", msg.To)
	assert.Equal(t, "received", msg.Status)
	require.NotNil(t, msg.DateSent)
	assert.Equal(t, "2024-03-01T07:00:00.000Z", *sms.ISOTimestamp(msg.DateSent))
}

func TestFetchMessageNotFound(t *testing.T) {
	api := &fakeAPI{err: &twclient.TwilioRestError{
		Status:  404,
		Code:    20404,
		Message: "The requested resource /2010-04-01/Accounts/AC1/Messages/SMnope.json was not found",
	}}
	p := newProvider(api, logging.Discard())

	_, err := p.FetchMessage(context.Background(), "SMnope")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Contains(t, err.Error(), "was not found")
}

func TestToMessageIgnoresBadDates(t *testing.T) {
	p := newProvider(&fakeAPI{}, logging.Discard())
	msg := p.toMessage(record("SM1", "x", "y", "yesterday"))
	assert.Nil(t, msg.DateSent)

	empty := p.toMessage(openapi.ApiV2010Message{})
	assert.Equal(t, sms.Message{}, empty)
}
