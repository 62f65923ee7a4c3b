package config

const (
	KeyConfigFile   = "twilio_config_file"
	KeyTransport    = "transport"
	KeyHost         = "host"
	KeyPort         = "port"
	KeyEndpointPath = "endpoint_path"
	KeyLogLevel     = "log_level"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)
