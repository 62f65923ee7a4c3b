// Package tools implements the SMS tools behind the MCP server.
//
// Dispatcher.Call answers an unrecognized name with "Unknown tool: <name>".
// That text only comes back to callers using the Dispatcher directly: over MCP,
// mcp-go resolves the name against the registered tools first and answers an
// unregistered one with its own JSON-RPC "tool not found" error.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/twilio-sms-mcp/internal/logging"
	"github.com/roivaz/twilio-sms-mcp/internal/metrics"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
)

// CredentialsMissingMessage is returned for every call while no Twilio client
// could be built at startup.
const CredentialsMissingMessage = "Error: Twilio credentials not configured. Set TWILIO_CONFIG_FILE to a JSON or YAML file with accountSid, authToken, and phoneNumber."

// Handler runs one tool. It returns the text payload on success; errors are
// rendered by the Dispatcher.
type Handler interface {
	Handle(ctx context.Context, args map[string]any) (string, error)
}

// Dispatcher routes tool calls by name. Every outcome, including failures,
// is a single text result.
type Dispatcher struct {
	handlers map[Name]Handler
	log      logging.Logger
	metrics  *metrics.Metrics
}

type DispatcherOption func(*Dispatcher)

func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher wires the three SMS tools to provider. A nil provider yields
// a disabled dispatcher.
func NewDispatcher(provider sms.Provider, phoneNumber string, log logging.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{log: log.WithName("tools")}
	if provider != nil {
		d.handlers = map[Name]Handler{
			NameListSMS:       &ListSMSHandler{Provider: provider, PhoneNumber: phoneNumber},
			NameGetLatestCode: &GetLatestCodeHandler{Provider: provider, PhoneNumber: phoneNumber},
			NameGetSMS:        &GetSMSHandler{Provider: provider},
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enabled reports whether a provider was configured.
func (d *Dispatcher) Enabled() bool {
	return d.handlers != nil
}

// ToolAdapter is the mcp-go handler for every registered tool.
func (d *Dispatcher) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(d.Call(ctx, req.Params.Name, req.GetArguments())), nil
}

// Call runs the named tool and returns the text to send back.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) string {
	start := time.Now()
	log := d.log.WithValues("tool", name, "call_id", uuid.NewString())

	if !d.Enabled() {
		log.Info("tool call rejected, twilio credentials not configured")
		d.metrics.ObserveCall(metricLabel(name), metrics.OutcomeDisabled, time.Since(start))
		return CredentialsMissingMessage
	}

	handler, ok := d.handlers[Name(name)]
	if !ok {
		log.Info("unknown tool requested")
		d.metrics.ObserveCall(metricLabel(name), metrics.OutcomeUnknown, time.Since(start))
		return fmt.Sprintf("Unknown tool: %s", name)
	}

	log.Debug("tool call", "args", args)
	text, err := invoke(ctx, handler, args)
	if err != nil {
		log.Error(err, "tool call failed")
		d.metrics.ObserveCall(name, metrics.OutcomeError, time.Since(start))
		return "Error: " + err.Error()
	}
	d.metrics.ObserveCall(name, metrics.OutcomeOK, time.Since(start))
	return text
}

func invoke(ctx context.Context, h Handler, args map[string]any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in tool handler: %v", r)
		}
	}()
	return h.Handle(ctx, args)
}

// metricLabel keeps arbitrary client-supplied names out of label values.
func metricLabel(name string) string {
	for _, n := range Names {
		if string(n) == name {
			return name
		}
	}
	return "other"
}
