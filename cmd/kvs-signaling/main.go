// kvs-signaling renders signaling requests and parses signaling responses
// offline.
//
// It never talks to the network. Requests are printed as a URL line followed
// by the JSON body; responses are read from a file (or stdin) and their
// fields printed one per line.
//
// Usage:
//
//	kvs-signaling [options] <command> [file]
//
// Commands:
//
//	describe-channel  create-channel  delete-channel  get-endpoint
//	get-ice-config    connect         describe-media  join-session
//	credentials       message
//	parse <kind> [file]   kind is one of the request commands above
//
// Options:
//
//	-region        Region (default: $KVS_REGION, then us-west-2)
//	-control-plane Control plane URL override (default: $KVS_CONTROL_PLANE_URL)
//	-log-level     disable|error|warn|info|debug|trace (default: warn)
//	-channel       Channel name
//	-arn           Channel ARN
//	-role          master|viewer (default: master)
//	-client-id     Viewer client id
//	-endpoint      Endpoint the request is sent to
//
// Example:
//
//	kvs-signaling -channel demo -ttl 60 -tags env=dev create-channel
//	kvs-signaling parse describe-channel response.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "kvs-signaling: %v\n", err)
		os.Exit(1)
	}
}
