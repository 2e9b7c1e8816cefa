package options

import (
	"github.com/spf13/cobra"
)

// HTTPOptions
type HTTPOptions struct {
	Host string
	Port int
}

func AddHTTPArgs(cmd *cobra.Command, o *HTTPOptions) {
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Address to listen on.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080,
		"Port to listen on.")
}
