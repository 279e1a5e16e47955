package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	build := GetBuild()
	commit := GetGitCommit()

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 888b     d888  .d88888b.  888b    888 8888888888 88888888888     d8888`,
		` 8888b   d8888 d88P" "Y88b 8888b   888 888            888        d88888`,
		` 88888b.d88888 888     888 88888b  888 888            888       d88P888`,
		` 888Y88888P888 888     888 888Y88b 888 8888888        888      d88P 888`,
		` 888 Y888P 888 888     888 888 Y88b888 888            888     d88P  888`,
		` 888  Y8P  888 888     888 888  Y88888 888            888    d88888888`,
		` 888   "   888 Y88b. .d88P 888   Y8888 888            888   d88P   888`,
		` 888       888  "Y88888P"  888    Y888 8888888888     888  d88P    888`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Personal Finance Tracking & Forecasting%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	kvPad := 16
	kvLines := [][2]string{
		{"Version", version},
		{"Build", build},
		{"Commit", commit},
		{"Environment", config.Environment},
		{"Horizon", strconv.Itoa(config.Forecast.HorizonMonths) + " months"},
		{"Snapshot", config.Data.SnapshotPath},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	logger.Info().
		Str("version", version).
		Str("build", build).
		Str("commit", commit).
		Str("environment", config.Environment).
		Int("horizon_months", config.Forecast.HorizonMonths).
		Msg("Application started")
}
