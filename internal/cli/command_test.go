package cli

import (
	"flag"
	"fmt"
	"testing"

	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

// mockCommand implements the Command interface for testing.
type mockCommand struct {
	description string
	runError    error
}

func (c mockCommand) SetFlags(fset *flag.FlagSet) {
	fset.String("test", "", "test flag")
}

func (c mockCommand) Description() string {
	return c.description
}

func (c mockCommand) Run(_ storage.Storage, _ *config.Config, _ *logger.Logger) error {
	return c.runError
}

func TestCommandInterface(t *testing.T) {
	var cmd Command = mockCommand{
		description: "Test command",
		runError:    nil,
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if fs.Lookup("test") == nil {
		t.Error("SetFlags() did not register the test flag")
	}

	desc := cmd.Description()
	if desc != "Test command" {
		t.Errorf("Description() = %v, want %v", desc, "Test command")
	}

	err := cmd.Run(nil, nil, nil)
	if err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}

	var cmdWithError Command = mockCommand{
		description: "Error command",
		runError:    fmt.Errorf("test error"),
	}

	err = cmdWithError.Run(nil, nil, nil)
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}
	if err.Error() != "test error" {
		t.Errorf("Run() error = %v, want %v", err, "test error")
	}
}
