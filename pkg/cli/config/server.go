package config

import (
	controller "github.com/m-mizutani/podrelay/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr          string
	MaxBodyBytes  int64
	AsyncDispatch bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("PODRELAY_ADDR"),
		},
		&cli.Int64Flag{
			Name:        "max-body-bytes",
			Usage:       "Largest accepted webhook body in bytes",
			Value:       controller.DefaultMaxBodyBytes,
			Destination: &c.MaxBodyBytes,
			Sources:     cli.EnvVars("PODRELAY_MAX_BODY_BYTES"),
		},
		&cli.BoolFlag{
			Name:        "async-dispatch",
			Usage:       "Acknowledge webhooks before platform posts complete",
			Destination: &c.AsyncDispatch,
			Sources:     cli.EnvVars("PODRELAY_ASYNC_DISPATCH"),
		},
	}
}
