package cli

import (
	"flag"

	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(storage storage.Storage, conf *config.Config, logger *logger.Logger) error
}
