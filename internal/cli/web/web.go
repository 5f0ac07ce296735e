package web

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/router"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type webCommand struct {
	port    string
	timeout int
}

func NewCommand() cli.Command {
	return &webCommand{}
}

func (c *webCommand) Description() string {
	return "Serves the rendered catalog document and listing exports"
}

const (
	defaultPort    = "8080"
	defaultTimeout = 3
)

func (c *webCommand) SetFlags(fs *flag.FlagSet) {
	port := os.Getenv("CARLOT_PORT")
	if port == "" {
		port = defaultPort
	}

	fs.StringVar(&c.port, "p", port, "port")
	fs.IntVar(&c.timeout, "t", defaultTimeout, "read header timeout in seconds")
}

func (c *webCommand) server(stor storage.Storage, conf *config.Config, logger *logger.Logger) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", c.port),
		ReadHeaderTimeout: time.Duration(c.timeout) * time.Second,
		Handler:           router.New(stor, conf, logger),
	}
}

func (c *webCommand) Run(stor storage.Storage, conf *config.Config, logger *logger.Logger) error {
	server := c.server(stor, conf, logger)
	logger.Info(fmt.Sprintf("Open catalog on http://localhost:%s", c.port))

	return server.ListenAndServe()
}
