package config

import (
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Show holds the podcast named in announcements
type Show struct {
	Name string
	URL  string
}

// Flags returns CLI flags for show configuration
func (c *Show) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "show-name",
			Usage:       "Podcast name used in announcements",
			Value:       model.DefaultShow.Name,
			Destination: &c.Name,
			Sources:     cli.EnvVars("PODRELAY_SHOW_NAME"),
		},
		&cli.StringFlag{
			Name:        "show-url",
			Usage:       "Listen URL used in announcements",
			Value:       model.DefaultShow.URL,
			Destination: &c.URL,
			Sources:     cli.EnvVars("PODRELAY_SHOW_URL"),
		},
	}
}

// Model returns the configured show
func (c *Show) Model() model.Show {
	return model.Show{Name: c.Name, URL: c.URL}
}
