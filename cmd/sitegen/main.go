// Command sitegen builds static local-services marketing sites from a table
// of cities.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, executes the selected command and returns the process
// exit code.
func run(args []string, out io.Writer) int {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitegen"),
		kong.Description("Generate static marketing sites for local services from a table of cities."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		return errors.NewCLIErrorAdapter(false, nil).HandleError(
			errors.WrapError(err, errors.CategoryInternal, "build command line parser").Build())
	}
	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&Global{Ctx: ctx, Out: out}, cli)
	return errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
