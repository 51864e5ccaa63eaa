// Package config handles configuration for the gateway component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the HTTP gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - AuthEndpointAddr: address of the remote gRPC authentication service.
//   - SecretKey: HMAC secret shared with the authentication service; the
//     gateway verifies inbound bearer tokens locally with it.
//   - AppID: audience value stamped into tokens minted for this gateway.
type Config struct {
	EndpointAddrHTTP string
	AuthEndpointAddr string
	SecretKey        string
	AppID            string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.AuthEndpointAddr = "localhost:50051"
	c.SecretKey = "secretKey"
	c.AppID = "gateway"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
