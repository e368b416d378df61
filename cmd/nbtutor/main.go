package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/nbtutor/nbtutor/internal/config"
	"github.com/nbtutor/nbtutor/internal/core"
	"github.com/nbtutor/nbtutor/internal/llm"
	"github.com/nbtutor/nbtutor/internal/render"
	"github.com/nbtutor/nbtutor/internal/session"
	"github.com/nbtutor/nbtutor/internal/teaching"
)

var BUILD_VERSION = "dev"

const historyListLimit = 30

var liveFlag = flag.Bool("live", false, "explain the code recorded immediately before this invocation")
var codeFlag = flag.String("code", "", "explain an arbitrary code snippet directly")
var recordFlag = flag.String("record", "", "record an executed code snippet into the session history")
var historyFlag = flag.Bool("history", false, "list recorded session executions")
var resetFlag = flag.Bool("reset", false, "clear the recorded session history")
var explainOnly = flag.Bool("explain", false, "generate only the concept explanation")
var experimentsOnly = flag.Bool("experiments", false, "generate only the experiment suggestions")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	renderer := render.New(os.Stdout, terminalWidth)

	if *helpFlag {
		render.RenderHelp(os.Stdout)
		return
	}

	// Initialize the logger
	logger, logLevel, err := initializeLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new nbtutor invocation --------", zap.Any("args", os.Args))

	// Load configuration
	cfg, err := config.NewLoader(logger).LoadFromFile(core.ConfigFile())
	if err != nil {
		renderer.RenderError(err)
		os.Exit(1)
	}

	if BUILD_VERSION != "dev" {
		if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			logLevel.SetLevel(level)
		}
	}

	if err := run(cfg, renderer, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		renderer.RenderError(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, renderer *render.Renderer, logger *zap.Logger) error {
	ctx := context.Background()

	// nbtutor -record "x = 1"
	if *recordFlag != "" {
		store, err := openStore(logger)
		if err != nil {
			return err
		}
		entry, err := store.Append(*recordFlag)
		if err != nil {
			return fmt.Errorf("failed to record execution: %w", err)
		}
		logger.Debug("recorded execution", zap.Int("ordinal", entry.Ordinal()))
		return nil
	}

	// nbtutor -history
	if *historyFlag {
		store, err := openStore(logger)
		if err != nil {
			return err
		}
		entries, err := store.RecentEntries(historyListLimit)
		if err != nil {
			return err
		}
		renderer.RenderHistory(entries)
		return nil
	}

	// nbtutor -reset
	if *resetFlag {
		store, err := openStore(logger)
		if err != nil {
			return err
		}
		return store.Reset()
	}

	client, err := llm.NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, logger)
	if err != nil {
		return err
	}

	// nbtutor -code "x = 1"
	if *codeFlag != "" {
		tutor := teaching.NewTutor(client, nil, nil, logger)
		applyMode(tutor)
		return analyze(ctx, renderer, func() (*teaching.Report, error) {
			return tutor.AnalyzeSnippet(ctx, *codeFlag)
		})
	}

	// nbtutor -live
	if *liveFlag {
		store, err := openStore(logger)
		if err != nil {
			return err
		}

		// Prefer the dense snapshot of the log; fall back to keyed lookup
		// against the store itself.
		var chain session.FallbackSource
		if snapshot, err := store.Snapshot(); err == nil {
			chain = append(chain, snapshot)
		}
		chain = append(chain, store)

		tutor := teaching.NewTutor(client, session.NewResolver(chain, logger), store, logger)
		applyMode(tutor)
		return analyze(ctx, renderer, func() (*teaching.Report, error) {
			return tutor.AnalyzeLiveCell(ctx)
		})
	}

	// nbtutor [cellIndex] [notebook.ipynb]
	cellIndex := cfg.DefaultCell
	notebookPath := cfg.Notebook

	args := flag.Args()
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid cell index %q: %w", args[0], err)
		}
		cellIndex = parsed
	}
	if len(args) > 1 {
		notebookPath = args[1]
	}

	tutor := teaching.NewTutor(client, nil, nil, logger)
	applyMode(tutor)
	return analyze(ctx, renderer, func() (*teaching.Report, error) {
		return tutor.AnalyzeStoredCell(ctx, notebookPath, cellIndex)
	})
}

func applyMode(tutor *teaching.Tutor) {
	if *explainOnly {
		tutor.SetMode(teaching.ModeExplain)
	} else if *experimentsOnly {
		tutor.SetMode(teaching.ModeExperiments)
	}
}

// analyze runs one analysis behind a spinner and renders the outcome.
func analyze(ctx context.Context, renderer *render.Renderer, fn func() (*teaching.Report, error)) error {
	spinner := render.NewSpinner(os.Stdout, "Thinking...")
	stop := spinner.Start(ctx)

	report, err := fn()
	stop()
	if err != nil {
		return err
	}

	renderer.RenderReport(report)
	return nil
}

func openStore(logger *zap.Logger) (*session.Store, error) {
	store, err := session.NewStore(core.SessionFile())
	if err != nil {
		logger.Error("failed to open session history", zap.Error(err))
		return nil, fmt.Errorf("failed to open session history: %w", err)
	}
	return store, nil
}

func initializeLogger() (*zap.Logger, zap.AtomicLevel, error) {
	logLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	logger, err := loggerConfig.Build()
	return logger, logLevel, err
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
