package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vilaca/gh-repo-export/internal/api"
	"github.com/vilaca/gh-repo-export/internal/api/github"
	"github.com/vilaca/gh-repo-export/internal/config"
	"github.com/vilaca/gh-repo-export/internal/report"
	"github.com/vilaca/gh-repo-export/internal/service"
)

const defaultUsername = "kirklin"

const (
	formatHTML = "html"
	formatJSON = "json"
)

// invocation holds the positional arguments of one run.
type invocation struct {
	Username string
	Format   string
	Output   string
}

func main() {
	_ = godotenv.Load()

	var (
		configPath string
		sourcePath string
		keepRaw    bool
	)

	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&sourcePath, "source", "", "structured snapshot to render from instead of fetching (html only)")
	flag.BoolVar(&keepRaw, "raw", true, "keep provider payloads in the JSON export")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [username] [html|json] [output]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	inv, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "CLI error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if flagWasSet("raw") {
		cfg.KeepRaw = keepRaw
	}

	exporter := buildExporter(cfg)
	ctx := context.Background()

	if inv.Format == formatJSON {
		if _, err := exporter.ExportStructured(ctx, inv.Username, inv.Output); err != nil {
			fmt.Fprintf(os.Stderr, "CLI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Rendered exports report failures through the log only.
	exporter.ExportRendered(ctx, inv.Username, inv.Output, sourcePath)
}

// parseArgs reads [username] [format] [output], applying defaults.
func parseArgs(args []string) (invocation, error) {
	if len(args) > 3 {
		return invocation{}, fmt.Errorf("too many arguments: %v", args[3:])
	}

	inv := invocation{
		Username: argOrDefault(args, 0, defaultUsername),
		Format:   argOrDefault(args, 1, formatHTML),
	}
	if inv.Format != formatHTML && inv.Format != formatJSON {
		return invocation{}, fmt.Errorf("unknown format %q (want %s or %s)", inv.Format, formatHTML, formatJSON)
	}
	inv.Output = argOrDefault(args, 2, fmt.Sprintf("%s-repos.%s", inv.Username, inv.Format))

	return inv, nil
}

func argOrDefault(args []string, i int, defaultValue string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return defaultValue
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// buildExporter wires up all dependencies and returns the exporter.
// This is the composition root where all dependencies are created and injected.
func buildExporter(cfg *config.Config) *service.Exporter {
	logger := service.NewStdLogger()
	httpClient := &http.Client{
		Timeout: cfg.Timeout(),
	}

	client := github.NewClient(api.ClientConfig{
		BaseURL:   cfg.GitHubURL,
		UserAgent: cfg.UserAgent,
	}, httpClient)

	fetcher := service.NewRepoFetcher(client, cfg.PageDelay(), service.TimerSleeper{}, logger)
	reports := service.NewReportService(client, fetcher, logger, cfg.KeepRaw)

	return service.NewExporter(reports, report.NewHTMLRenderer(), service.NewFileStore(logger), logger)
}
