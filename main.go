package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/cli/export"
	importCmd "github.com/GustavoCaso/carlot/internal/cli/import"
	"github.com/GustavoCaso/carlot/internal/cli/list"
	"github.com/GustavoCaso/carlot/internal/cli/render"
	"github.com/GustavoCaso/carlot/internal/cli/tui"
	"github.com/GustavoCaso/carlot/internal/cli/web"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage/sqlite"
)

var configPath string

var subcommands = map[string]cli.Command{
	"browse": tui.NewCommand(),
	"export": export.NewCommand(),
	"import": importCmd.NewCommand(),
	"list":   list.NewCommand(),
	"render": render.NewCommand(),
	"web":    web.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "carlot.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s. \nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)
	defer log.Close()

	stor, err := sqlite.New(conf.DB)
	if err != nil {
		log.Fatal("Unable to open the DB", "source", conf.DB.Source, "error", err.Error())
	}
	defer stor.Close()

	if err = stor.ApplyMigrations(context.Background(), log); err != nil {
		log.Fatal("Unable to apply migrations", "error", err.Error())
	}

	if err = command.Run(stor, conf, log); err != nil {
		log.Error("Command failed", "command", commandName, "error", err.Error())
		stor.Close()
		log.Close()
		os.Exit(1)
	}
}

func printHelp() {
	printUsage()

	for _, c := range slices.Sorted(maps.Keys(subcommands)) {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: carlot <subcommand> [flags]\n\n")
}
