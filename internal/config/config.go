package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Init wires environment variables, the optional config.env file and the
// command's persistent flags into viper. Flags are registered with dashes
// (--config-file) and bound to the underscore keys used everywhere else.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(flagKey(f.Name), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
	viper.SetDefault(KeyLogLevel, "info")
}

func flagKey(name string) string {
	if name == "config-file" {
		return KeyConfigFile
	}
	return strings.ReplaceAll(name, "-", "_")
}

func ConfigFile() string   { return viper.GetString(KeyConfigFile) }
func Transport() string    { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func EndpointPath() string { return viper.GetString(KeyEndpointPath) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
