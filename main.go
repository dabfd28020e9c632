// Screenshot Organizer - groups screenshots into session folders
//
// This tool scans a directory for screenshots, groups them into sessions by
// time proximity (with a hard early-morning day boundary), optionally
// refines sessions by visual similarity, names each session folder from its
// start time (optionally with an OCR-derived label), optionally re-merges
// sessions whose names describe the same activity, and moves the files into
// per-session folders. Lone screenshots go to an uncategorized folder.
//
// Usage:
//
//	screenshot-organizer                         # Organize ~/Desktop
//	screenshot-organizer --dry-run               # Preview without moving
//	screenshot-organizer --session-gap-minutes 30
//	screenshot-organizer --source-path ~/Downloads
//	screenshot-organizer --smart-naming --merge-similar-sessions
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"screenshot-organizer/internal/cluster"
	"screenshot-organizer/internal/label"
	"screenshot-organizer/internal/logger"
	"screenshot-organizer/internal/model"
	"screenshot-organizer/internal/naming"
	"screenshot-organizer/internal/ocr"
	"screenshot-organizer/internal/phash"
	"screenshot-organizer/internal/plan"
	"screenshot-organizer/internal/screenshot"
)

type options struct {
	sourcePath       string
	gapMinutes       int
	enableSimilarity bool
	simThreshold     int
	smartNaming      bool
	mergeSessions    bool
	mergeThreshold   float64
	boundaryHour     int
	ollamaModel      string
	dryRun           bool
	autoConfirm      bool
	verbose          bool
}

func parseFlags() options {
	var opt options

	defaultSource := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultSource = filepath.Join(home, "Desktop")
	}

	flag.StringVar(&opt.sourcePath, "source-path", defaultSource, "Directory to organize")
	flag.IntVar(&opt.gapMinutes, "session-gap-minutes", 15, "Maximum gap in minutes between screenshots in the same session")
	flag.BoolVar(&opt.enableSimilarity, "enable-similarity-split", false, "Split sessions on visual dissimilarity")
	flag.IntVar(&opt.simThreshold, "similarity-threshold", 10, "Perceptual hash distance above which a session splits")
	flag.BoolVar(&opt.smartNaming, "smart-naming", false, "Derive descriptive folder names from screenshot text")
	flag.BoolVar(&opt.mergeSessions, "merge-similar-sessions", false, "Re-merge adjacent sessions with similar names")
	flag.Float64Var(&opt.mergeThreshold, "merge-threshold", 0.5, "Name similarity required to merge sessions (0-1)")
	flag.IntVar(&opt.boundaryHour, "day-boundary-hour", cluster.DefaultBoundaryHour, "Hour of day treated as a hard session boundary")
	flag.StringVar(&opt.ollamaModel, "ollama-model", label.DefaultModel, "Local model used for smart naming labels")
	flag.BoolVar(&opt.dryRun, "dry-run", false, "Show what would be done without moving files")
	flag.BoolVar(&opt.autoConfirm, "auto-confirm", false, "Skip the confirmation prompt")
	flag.BoolVar(&opt.verbose, "verbose", false, "Show detailed output including similarity scores")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Screenshot Organizer - group screenshots into session folders\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                # Organize ~/Desktop with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dry-run                      # Preview without moving files\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --session-gap-minutes 30       # Use a 30 minute session gap\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --smart-naming --auto-confirm  # Descriptive names, no prompt\n", os.Args[0])
	}

	flag.Parse()
	return opt
}

func main() {
	os.Exit(run(parseFlags()))
}

func run(opt options) int {
	level := "warn"
	if opt.verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{Level: level})

	if _, err := os.Stat(opt.sourcePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: path does not exist: %s\n", opt.sourcePath)
		return 1
	}

	fmt.Println("Screenshot Organizer")
	fmt.Printf("Scanning: %s\n", opt.sourcePath)
	fmt.Printf("Session gap: %d minutes\n", opt.gapMinutes)
	if opt.enableSimilarity {
		fmt.Printf("Similarity splitting: ENABLED (threshold: %d)\n", opt.simThreshold)
	} else {
		fmt.Println("Similarity splitting: DISABLED (use --enable-similarity-split to enable)")
	}

	ctx := context.Background()

	sessions, uncategorized, err := partition(ctx, opt, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(sessions) == 0 && len(uncategorized) == 0 {
		fmt.Println("\nNo screenshots found!")
		return 0
	}

	p := plan.New(opt.sourcePath, sessions, uncategorized, logger.Named(log, "plan"))
	p.Preview(os.Stdout)

	if opt.dryRun {
		fmt.Println("\n[DRY RUN - no files will be moved]")
		report := p.Execute(true)
		fmt.Printf("Would move %d screenshots\n", len(report.Moved))
		return 0
	}

	if !opt.autoConfirm && !confirm() {
		fmt.Println("Cancelled.")
		return 0
	}

	report := p.Execute(false)
	fmt.Printf("\nMoved %d screenshots\n", len(report.Moved))
	if len(report.Failed) > 0 {
		fmt.Printf("Failed to move %d screenshots:\n", len(report.Failed))
		for _, f := range report.Failed {
			fmt.Printf("  %s: %v\n", f.Screenshot.Name(), f.Reason)
		}
		return 1
	}

	fmt.Println("\nDone!")
	return 0
}

// partition runs discovery and every clustering stage, returning the final
// split into regular sessions and uncategorized screenshots.
func partition(ctx context.Context, opt options, log zerolog.Logger) ([]*model.Session, []*model.Screenshot, error) {
	shots, err := screenshot.Discover(opt.sourcePath, logger.Named(log, "discover"))
	if err != nil {
		return nil, nil, err
	}
	if len(shots) == 0 {
		return nil, nil, nil
	}
	fmt.Printf("Found %d screenshots\n", len(shots))

	boundary := cluster.Boundary{Hour: opt.boundaryHour}

	sessions := cluster.ByTime(shots, time.Duration(opt.gapMinutes)*time.Minute, boundary)
	fmt.Printf("Time-based clustering: %d sessions\n", len(sessions))

	if opt.enableSimilarity {
		sessions = cluster.RefineBySimilarity(sessions, opt.simThreshold, phash.Compute, logger.Named(log, "refine"))
		fmt.Printf("After similarity refinement: %d sessions\n", len(sessions))
	}

	namer := &naming.Namer{
		Smart: opt.smartNaming,
		Log:   logger.Named(log, "naming"),
	}
	if opt.smartNaming {
		ocrLog := logger.Named(log, "ocr")
		namer.Extract = func(ctx context.Context, path string) string {
			return ocr.ExtractText(ctx, path, ocrLog)
		}
		namer.Generator = label.NewOllama(opt.ollamaModel, logger.Named(log, "label"))
	}
	namer.AssignNames(ctx, sessions)

	if opt.mergeSessions {
		sessions = cluster.MergeSimilar(sessions, opt.mergeThreshold, boundary, logger.Named(log, "merge"))
		fmt.Printf("After merging similar sessions: %d sessions\n", len(sessions))
	}

	regular, uncategorized := cluster.Partition(sessions)
	return regular, uncategorized, nil
}

func confirm() bool {
	fmt.Print("\nProceed with organization? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("\nCancelled.")
		return false
	}
	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}
