package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sentriq/modscan/internal/scan/report"
	"github.com/sentriq/modscan/internal/scan/types"
	"github.com/sentriq/modscan/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Report kinds accepted by the analyze command.
const (
	ReportUserSafety          = "user_safety"
	ReportChannelOptimization = "channel_optimization"
	ReportComprehensive       = "comprehensive"
)

// window is the JSON input document: one message/user window plus an
// optional server structure.
type window struct {
	Messages []*types.Message `json:"messages"`
	Users    []*types.User    `json:"users"`
	Server   *types.Server    `json:"server,omitempty"`
}

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "modscan",
		Usage: "Run moderation analytics over a chat window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory to search for modscan.toml and lexicon.jsonc",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Generate a moderation report from a window file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "window",
						Aliases:  []string{"w"},
						Usage:    "Path to the JSON window file (messages, users, optional server)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   ReportComprehensive,
						Usage:   "Report type: user_safety, channel_optimization or comprehensive",
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Optional query used for narrowing and rendering context",
					},
				},
				Action: analyze,
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// analyze loads the window, runs the requested report and prints the
// rendered handoff text.
func analyze(_ context.Context, cmd *cli.Command) error {
	app, err := setup.InitializeApp(cmd.String("config"), cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = app.Logger.Sync() }()

	win, err := loadWindow(cmd.String("window"))
	if err != nil {
		return err
	}

	app.Logger.Info("Loaded analysis window",
		zap.Int("messages", len(win.Messages)),
		zap.Int("users", len(win.Users)))

	assembler := report.NewAssembler(app, nil, app.Logger)

	var (
		result *types.ModerationReport
		query  = cmd.String("query")
		now    = time.Now()
	)

	switch reportType := cmd.String("type"); reportType {
	case ReportUserSafety:
		result = assembler.UserSafetyReport(win.Messages, win.Users, query, now)
	case ReportChannelOptimization:
		result = assembler.ChannelOptimizationReport(win.Server, query, now)
	case ReportComprehensive:
		result = assembler.ComprehensiveReport(win.Messages, win.Users, win.Server, query, now)
	default:
		return fmt.Errorf("unknown report type %q", reportType)
	}

	fmt.Println(assembler.FormatReportForAI(result, query))

	return nil
}

// loadWindow reads and decodes the JSON window file.
func loadWindow(path string) (*window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read window file %s: %w", path, err)
	}

	var win window
	if err := sonic.Unmarshal(data, &win); err != nil {
		return nil, fmt.Errorf("failed to parse window file %s: %w", path, err)
	}

	return &win, nil
}
