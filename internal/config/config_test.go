package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagKey(t *testing.T) {
	assert.Equal(t, KeyConfigFile, flagKey("config-file"))
	assert.Equal(t, KeyEndpointPath, flagKey("endpoint-path"))
	assert.Equal(t, KeyLogLevel, flagKey("log-level"))
	assert.Equal(t, KeyPort, flagKey("port"))
}

func TestInitBindsFlagsAndDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("config-file", "", "")
	root.PersistentFlags().String("transport", "", "")
	Init(root)

	assert.Equal(t, TransportStdio, Transport())
	assert.Equal(t, 8000, Port())
	assert.Equal(t, "/mcp", EndpointPath())

	require.NoError(t, root.PersistentFlags().Set("config-file", "/tmp/twilio.json"))
	require.NoError(t, root.PersistentFlags().Set("transport", "HTTP"))
	assert.Equal(t, "/tmp/twilio.json", ConfigFile())
	assert.Equal(t, TransportHTTP, Transport())
}
