package config

import (
	"flag"
	"os"

	"github.com/mkuznetsov/ssocore/internal/flagx"
)

// parseFlags populates selected gateway Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   remote auth service gRPC address
//	-s string   JWT HMAC secret key (shared with the auth service)
//	-i string   application id used as token audience
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run gateway")
	fs.StringVar(&config.AuthEndpointAddr, "g", config.AuthEndpointAddr, "auth service gRPC address")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AppID, "i", config.AppID, "application id")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
