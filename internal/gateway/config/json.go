package config

import (
	"encoding/json"
	"os"

	"github.com/mkuznetsov/ssocore/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; its fields are copied into the runtime Config.
// Pointer fields distinguish an absent key from a zero value, so a partial
// file overrides only the keys it names.
type JsonConfig struct {
	EndpointAddrHTTP *string `json:"endpoint_addr_http"`
	AuthEndpointAddr *string `json:"auth_endpoint_addr"`
	SecretKey        *string `json:"secret_key"`
	AppID            *string `json:"app_id"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.AuthEndpointAddr != nil {
		config.AuthEndpointAddr = *c.AuthEndpointAddr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AppID != nil {
		config.AppID = *c.AppID
	}
}
