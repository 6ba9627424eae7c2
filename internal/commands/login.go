package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todos/internal/exitcode"
	"todos/internal/remote/googletasks"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with Google for push" }
func (c *LoginCmd) Usage() string     { return "todos login" }
func (c *LoginCmd) NeedsStore() bool  { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Parse(args []string) error { return noArgs(args) }

func (c *LoginCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	cfg := env.Config

	if cfg.HasToken() && googletasks.TokenValid(ctx, cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	if err := googletasks.Login(ctx, cfg, errOut); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if errors.Is(err, googletasks.ErrNoOAuthClient) {
			fmt.Fprint(errOut, oauthSetupHelp(cfg.Dir))
		}
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func oauthSetupHelp(dir string) string {
	return fmt.Sprintf(`
To push tasks to Google Tasks you need OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Enable the Google Tasks API for your project
3. Create an OAuth client ID of type "Desktop app" and download the JSON
4. Save it as:
   %s/oauth_client.json

Then run 'todos login' again.
`, dir)
}
