// Package cli implements the interactive command-line client for the
// auth service.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/authservice/internal/client/api"
	"github.com/dmitrijs2005/authservice/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	token    string
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
