// Package credentials loads the Twilio account triple used by the server.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ErrNoConfigFile is returned by Load when no path was configured.
var ErrNoConfigFile = errors.New("no twilio config file configured")

// Credentials identifies the Twilio account and the number whose inbox is read.
type Credentials struct {
	AccountSID  string `json:"accountSid"`
	AuthToken   string `json:"authToken"`
	PhoneNumber string `json:"phoneNumber"`
}

// Usable reports whether enough is set to build an API client. The phone
// number is optional; without it listings are not narrowed by recipient.
func (c Credentials) Usable() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}

// Load reads credentials from a JSON or YAML file.
func Load(path string) (Credentials, error) {
	if path == "" {
		return Credentials{}, ErrNoConfigFile
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read twilio config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes credentials from raw JSON or YAML content.
func Parse(raw []byte) (Credentials, error) {
	var creds Credentials
	if err := yaml.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse twilio config: %w", err)
	}
	return creds, nil
}
