package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/app"
	chorescli "github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
// Note: The cliInstance will be created by GetCLIFromContext in the CLI package
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := context.Background()
	return ExecuteCLICommandWithContext(t, ctx, testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// Nil args would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	// GetCLIFromContext picks the app up from the context instead of
	// opening the configured database
	ctxWithApp := chorescli.ContextWithApp(ctx, testApp)

	// Set the context on the command
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Capture output and execute
	var output string
	var executeErr error

	output = testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
