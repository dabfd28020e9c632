// Package plan turns a finalized partition into filesystem moves.
package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"screenshot-organizer/internal/model"
)

// UncategorizedDir is the folder that collects lone screenshots.
const UncategorizedDir = "uncategorized"

// Failure records a screenshot that could not be moved, and why.
type Failure struct {
	Screenshot *model.Screenshot
	Reason     error
}

// Report summarizes an execution: which screenshots were moved (or would
// be, under dry-run) and which failed.
type Report struct {
	Moved  []*model.Screenshot
	Failed []Failure
}

// Plan is the finalized session-to-directory mapping, rooted at the source
// directory.
type Plan struct {
	Root          string
	Sessions      []*model.Session
	Uncategorized []*model.Screenshot

	// move relocates one file; overridable so tests can stub mutations out.
	move func(src, dst string) error
	log  zerolog.Logger
}

// New builds a plan over the given partition.
func New(root string, sessions []*model.Session, uncategorized []*model.Screenshot, log zerolog.Logger) *Plan {
	return &Plan{
		Root:          root,
		Sessions:      sessions,
		Uncategorized: uncategorized,
		move:          moveFile,
		log:           log,
	}
}

// Execute creates one directory per session (plus the uncategorized folder
// when needed) and moves each screenshot into its target directory exactly
// once. A per-file failure is recorded and does not abort the remaining
// moves. Under dry-run every decision is made but nothing on disk changes.
func (p *Plan) Execute(dryRun bool) Report {
	var report Report

	for _, session := range p.Sessions {
		dir := filepath.Join(p.Root, session.FolderName)
		p.moveAll(dir, session.Screenshots, dryRun, &report)
	}

	if len(p.Uncategorized) > 0 {
		dir := filepath.Join(p.Root, UncategorizedDir)
		p.moveAll(dir, p.Uncategorized, dryRun, &report)
	}

	return report
}

func (p *Plan) moveAll(dir string, shots []*model.Screenshot, dryRun bool, report *Report) {
	if !dryRun {
		if err := os.MkdirAll(dir, 0755); err != nil {
			for _, shot := range shots {
				report.Failed = append(report.Failed, Failure{Screenshot: shot, Reason: err})
			}
			p.log.Error().Err(err).Str("dir", dir).Msg("could not create session folder")
			return
		}
	}

	for _, shot := range shots {
		dst := filepath.Join(dir, shot.Name())
		if dryRun {
			report.Moved = append(report.Moved, shot)
			continue
		}
		if err := p.move(shot.Path, dst); err != nil {
			report.Failed = append(report.Failed, Failure{Screenshot: shot, Reason: err})
			p.log.Error().Err(err).Str("file", shot.Name()).Msg("move failed")
			continue
		}
		report.Moved = append(report.Moved, shot)
	}
}

// Preview writes the proposed organization to w.
func (p *Plan) Preview(w io.Writer) {
	total := len(p.Uncategorized)
	for _, s := range p.Sessions {
		total += s.Count()
	}

	fmt.Fprintf(w, "\nFound %d screenshots\n\n", total)
	fmt.Fprintln(w, "Proposed organization:")

	for _, session := range p.Sessions {
		fmt.Fprintf(w, "\nSession: %s (%d screenshots)\n", session.FolderName, session.Count())
		for _, shot := range session.Screenshots {
			previewLine(w, shot)
		}
	}

	if len(p.Uncategorized) > 0 {
		fmt.Fprintf(w, "\nUncategorized (%d screenshots)\n", len(p.Uncategorized))
		for _, shot := range p.Uncategorized {
			previewLine(w, shot)
		}
	}

	if len(p.Sessions) == 0 && len(p.Uncategorized) == 0 {
		fmt.Fprintln(w, "\nNo screenshots to organize!")
	}
}

func previewLine(w io.Writer, shot *model.Screenshot) {
	fmt.Fprintf(w, "  %-50s [%s] %.1fKB\n", shot.Name(), shot.TimeString(), float64(shot.Size)/1024)
}

// moveFile renames src to dst, falling back to copy+delete for cross-device
// moves.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Close()
}
