package mcp

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/roivaz/twilio-sms-mcp/internal/config"
	"github.com/roivaz/twilio-sms-mcp/internal/credentials"
	"github.com/roivaz/twilio-sms-mcp/internal/logging"
	"github.com/roivaz/twilio-sms-mcp/internal/mcp/tools"
	"github.com/roivaz/twilio-sms-mcp/internal/metrics"
	"github.com/roivaz/twilio-sms-mcp/internal/sms"
	"github.com/roivaz/twilio-sms-mcp/internal/sms/twilio"
)

type Config struct {
	Tools        []mcp.Tool
	Adapter      ToolAdapter
	Options      []server.StreamableHTTPOption
	EndpointPath string
	Gatherer     prometheus.Gatherer
	Logger       logging.Logger
}

// DefaultConfig assembles the server from viper settings. Credential problems
// are logged and leave the tools disabled; they never stop startup.
func DefaultConfig(log logging.Logger) Config {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	creds := LoadCredentials(log)
	var provider sms.Provider
	if creds.Usable() {
		provider = twilio.New(creds, log)
		log.Info("twilio client configured", "accountSid", creds.AccountSID, "phoneNumber", creds.PhoneNumber)
	} else {
		log.Info("twilio credentials incomplete, tools disabled")
	}

	dispatcher := tools.NewDispatcher(provider, creds.PhoneNumber, log, tools.WithMetrics(metrics.New(registry)))

	return Config{
		Tools:   tools.Definitions(),
		Adapter: dispatcher,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
		},
		EndpointPath: config.EndpointPath(),
		Gatherer:     registry,
		Logger:       log,
	}
}

// LoadCredentials reads the configured credentials file. The file is the only
// source: a missing path, unreadable file or bad content yields empty
// credentials, which leaves the tools disabled.
func LoadCredentials(log logging.Logger) credentials.Credentials {
	creds, err := credentials.Load(config.ConfigFile())
	switch {
	case errors.Is(err, credentials.ErrNoConfigFile):
		log.Info("TWILIO_CONFIG_FILE not set")
		return credentials.Credentials{}
	case err != nil:
		log.Error(err, "failed to load twilio config", "path", config.ConfigFile())
		return credentials.Credentials{}
	}
	return creds
}
