// Command plectrum generates enum packages from definitions files and checks
// lookup tables against them.
//
//	plectrum gen [-target dir] [-watch] [-dump] defs.yaml
//	plectrum check [-driver sqlite] [-dsn path] [-enum Name] defs.yaml
//	plectrum schema [-dialect postgres] defs.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/plectrum"
)

// Environment variables read by the check command.
const (
	envDSN    = "PLECTRUM_DSN"
	envDriver = "PLECTRUM_DRIVER"
)

const usage = `Usage: plectrum <command> [flags] <defs.yaml>

Commands:
  gen     generate the enum package
  check   check the lookup tables of a database against the enums
  schema  print the DDL and seed rows of the lookup tables

Run plectrum <command> -h for the flags of a command.
`

// cli holds the process environment of a command run.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	log    *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := &cli{stdout: os.Stdout, stderr: os.Stderr, getenv: os.Getenv}
	code := c.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the command named by args[0] and returns the exit code.
func (c *cli) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}
	var cmd func(context.Context, []string) error
	switch args[0] {
	case "gen":
		cmd = c.gen
	case "check":
		cmd = c.check
	case "schema":
		cmd = c.schema
	case "-h", "-help", "--help", "help":
		fmt.Fprint(c.stdout, usage)
		return 0
	default:
		fmt.Fprintf(c.stderr, "plectrum: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
	if err := cmd(ctx, args[1:]); err != nil {
		switch err.(type) {
		case usageError:
			fmt.Fprintf(c.stderr, "plectrum %s: %v\n", args[0], err)
			return 2
		case mismatchError:
			return 1
		default:
			fmt.Fprintf(c.stderr, "plectrum %s: %v\n", args[0], err)
			return 1
		}
	}
	return 0
}

// setupLogger builds the logger of a run and installs it as the package
// logger of plectrum.
func (c *cli) setupLogger(verbose bool) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	c.log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(c.stderr),
		level,
	))
	plectrum.SetLogger(c.log)
}

// usageError reports invalid arguments.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

// mismatchError reports that at least one table is out of sync. The report
// has already been printed.
type mismatchError struct{ n int }

func (e mismatchError) Error() string { return fmt.Sprintf("%d enum(s) out of sync", e.n) }
