package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Context struct {
	LogFile  string
	LogLevel string
}

type CLI struct {
	LogFile  string `default:"/tmp/dmg/log" placeholder:"<log-file-path>" help:"location of log file"`
	LogLevel string `default:"info" placeholder:"<debug|info|warn|error>" help:"the logging level (debug, info, warn, error)"`

	Attach  AttachCmd  `cmd:"" help:"attach a disk image and print its device node and mount point"`
	Detach  DetachCmd  `cmd:"" help:"detach an attached disk image by device node or mount point"`
	Create  CreateCmd  `cmd:"" help:"create a new disk image from a source folder"`
	Info    InfoCmd    `cmd:"" help:"print hdiutil's report of currently attached images"`
	Doc     DocCmd     `cmd:"" help:"print complete command help formatted as markdown"`
	Version VersionCmd `cmd:"" help:"print version information about this command"`
}

func (c *CLI) initSlog() {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // Default to info if invalid
	}

	// hdiutil invocations are chatty in the logs but the command output
	// itself goes to stdout, so everything slog-shaped lands in a rotating
	// file out of the way.
	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Info("slog initialized")
}

const description = `Manage macOS disk images: attach, detach, and create.

Wraps the hdiutil command that ships with macOS.`

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Description(description),
		kong.Configuration(kongyaml.Loader, "/etc/dmg/config.yaml", "~/.config/dmg/config.yaml"))
	cli.initSlog()

	if err := verifyPrerequisites(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	err := ctx.Run(&Context{
		LogFile:  cli.LogFile,
		LogLevel: cli.LogLevel,
	})
	ctx.FatalIfErrorf(err)
}
