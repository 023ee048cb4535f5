// Package main provides the CLI entry point for tilelapse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/tilelapse/pkg/adapters/ffmpegencoder"
	"github.com/user/tilelapse/pkg/adapters/filesink"
	"github.com/user/tilelapse/pkg/adapters/ggrenderer"
	"github.com/user/tilelapse/pkg/adapters/logger"
	"github.com/user/tilelapse/pkg/adapters/mp4probe"
	"github.com/user/tilelapse/pkg/adapters/nullsink"
	"github.com/user/tilelapse/pkg/adapters/osfilesystem"
	"github.com/user/tilelapse/pkg/config"
	"github.com/user/tilelapse/pkg/orchestrator"
	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/stages/encode"
	"github.com/user/tilelapse/pkg/stages/locate"
	"github.com/user/tilelapse/pkg/stages/prepare"
	"github.com/user/tilelapse/pkg/stages/publish"
	"github.com/user/tilelapse/pkg/summarizer"
	"github.com/user/tilelapse/pkg/timelapse"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Create  CreateCmd  `cmd:"" help:"Build the daily timelapse MP4 from merged tile snapshots."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// CreateCmd defines the create subcommand.
type CreateCmd struct {
	// Target date
	Date string `help:"Target date in YYYYMMDD form (default: yesterday in WIB)."`

	// Paths
	InputDir  string `help:"Base directory holding one snapshot directory per date (default: output)."`
	OutputDir string `help:"Directory for the produced MP4 files (default: timelapse)."`
	Config    string `short:"c" help:"Optional YAML config file."`

	// Encoder
	FFmpegPath string `help:"Path to ffmpeg (falls back to FFMPEG_PATH env, then system search)."`
	FPS        int    `help:"Frames per second for the output video (default from config)."`

	// Behavior
	KeepFrames     bool `help:"Retain the prepared-frame temporary directory after the run."`
	SkipLatestCopy bool `help:"Do not overwrite latest.mp4."`

	// Debug options
	Debug    bool   `short:"d" help:"Save intermediate artifacts (frame manifest, sizing, encoder log)."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("tilelapse"),
		kong.Description("Build daily pixel-art timelapse videos from merged tile snapshots."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the create command.
func (cmd *CreateCmd) Run() error {
	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Build config once: defaults, optional file, environment, CLI.
	cfg, err := cmd.buildConfig(log)
	if err != nil {
		return err
	}

	// Resolve the target date.
	var date timelapse.TargetDate
	if cmd.Date != "" {
		date, err = timelapse.ParseDate(cmd.Date)
		if err != nil {
			return err
		}
	} else {
		date = timelapse.YesterdayIn(time.Now())
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cmd.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	encoder := ffmpegencoder.New(sink, log)
	encoder.FFmpegPath = cmd.FFmpegPath

	// Create stages
	locateStage := locate.New(fs, log)
	prepareStage := prepare.New(fs, renderer, sink, log)
	encodeStage := encode.NewStage(encoder, fs, log)
	publishStage := publish.New(fs, log)

	// Create orchestrator
	orch := orchestrator.New(
		locateStage,
		prepareStage,
		encodeStage,
		publishStage,
		fs,
		sink,
		log,
	)

	log.Info(l10n.F("Creating timelapse for %s...", date.Display()))

	result, err := orch.Run(ctx, orchestrator.Config{
		Date:            date,
		InputDir:        cfg.InputDir,
		OutputDir:       cfg.OutputDir,
		ForcedWidth:     cfg.Width,
		ForcedHeight:    cfg.Height,
		DownscaleFactor: cfg.DownscaleFactor,
		FPS:             cfg.FPS,
		Codec:           cfg.Codec,
		CRF:             cfg.CRF,
		Preset:          cfg.Preset,
		PixelFormat:     cfg.PixelFormat,
		ExtraArgs:       cfg.ExtraFFmpeg,
		FontPath:        cfg.FontPath,
		FontSize:        cfg.FontSize,
		KeepFrames:      cfg.KeepFrames,
		SkipLatestCopy:  cfg.SkipLatestCopy,
	})
	if err != nil {
		return err
	}

	summary := summarizer.Summary{Result: result}
	if info, err := mp4probe.Probe(result.OutputPath); err == nil {
		summary.DurationMs = info.DurationMs
		summary.ProbedWidth = info.Width
		summary.ProbedHeight = info.Height
	} else {
		log.Debug("Could not probe output file: %s", err)
	}

	fmt.Print(summary.Format())
	return nil
}

// buildConfig assembles the run configuration: defaults, then the optional
// YAML file, then environment variables, then CLI flags.
func (cmd *CreateCmd) buildConfig(log ports.Logger) (config.Config, error) {
	var cfg config.Config
	var err error

	if cmd.Config != "" {
		cfg, err = config.Load(cmd.Config)
		if err != nil {
			return cfg, err
		}
	} else {
		cfg = config.Default()
	}

	for _, warning := range cfg.ApplyEnv(config.OSLookup) {
		log.Warn("%s", warning)
	}

	if cmd.InputDir != "" {
		cfg.InputDir = cmd.InputDir
	}
	if cmd.OutputDir != "" {
		cfg.OutputDir = cmd.OutputDir
	}
	if cmd.FPS > 0 {
		cfg.FPS = cmd.FPS
	}
	if cmd.KeepFrames {
		cfg.KeepFrames = true
	}
	if cmd.SkipLatestCopy {
		cfg.SkipLatestCopy = true
	}

	return cfg, nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("tilelapse version %s", version))
	return nil
}
