package scaffold

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/rms-studio/scaffold/lib/consoles"
	"github.com/rms-studio/scaffold/lib/filters"
	"github.com/rms-studio/scaffold/lib/model"
	"github.com/rms-studio/scaffold/lib/utils"
)

type Materializer struct {
	console consoles.Console
}

type Options struct {
	// DryRun reports what would be created without touching the
	// filesystem.
	DryRun bool

	// Only limits creation to files whose relative path matches. Groups
	// where no file matches are skipped entirely, directory included.
	// Nil means everything.
	Only filters.PathFilter

	// Progress replaces the per-file lines with a progress bar.
	Progress bool
}

func New(console consoles.Console) *Materializer {
	return &Materializer{
		console: console,
	}
}

// Materialize walks the structure in declaration order: each group's
// directory first, then its files. Existing files are skipped silently
// and never truncated, so running it again over the same root is a
// no-op. The first filesystem error aborts the run; whatever was already
// created stays.
func (m *Materializer) Materialize(root string, s *model.Structure, opts *Options) (*model.CreationReport, error) {
	if opts == nil {
		opts = &Options{}
	}

	only := opts.Only
	if only == nil {
		only = func(string) bool { return true }
	}

	var bar *progressbar.ProgressBar
	if opts.Progress && !opts.DryRun {
		bar = utils.NewProgressBar(s.FileCount())
	}

	report := &model.CreationReport{}

	for _, g := range s.Groups() {
		if err := m.materializeGroup(root, g, only, opts, report, bar); err != nil {
			return report, err
		}

		report.GroupsProcessed++
	}

	for _, extra := range s.Extras {
		if !only(extra) {
			continue
		}

		if err := m.ensureDir(root, path.Dir(extra), opts, report); err != nil {
			return report, err
		}

		if err := m.ensureFile(root, extra, opts, report, bar); err != nil {
			return report, err
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return report, nil
}

func (m *Materializer) materializeGroup(root string, g model.Group, only filters.PathFilter,
	opts *Options, report *model.CreationReport, bar *progressbar.ProgressBar,
) error {
	files := lo.Filter(g.Files, func(f string, _ int) bool {
		return only(path.Join(g.Dir, f))
	})

	if len(files) == 0 && len(g.Files) > 0 {
		return nil
	}

	if err := m.ensureDir(root, g.Dir, opts, report); err != nil {
		return err
	}

	for _, f := range files {
		if err := m.ensureFile(root, path.Join(g.Dir, f), opts, report, bar); err != nil {
			return err
		}
	}

	return nil
}

func (m *Materializer) ensureDir(root, dir string, opts *Options, report *model.CreationReport) error {
	target := filepath.Join(root, filepath.FromSlash(dir))

	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		return nil

	case err == nil:
		return errors.Errorf("cannot create directory %v: a file is in the way", target)

	case os.IsNotExist(err):
		if !opts.DryRun {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrapf(err, "creating directory %v", target)
			}
		}

		report.DirsCreated++
		return nil

	default:
		return errors.Wrapf(err, "stat %v", target)
	}
}

func (m *Materializer) ensureFile(root, rel string, opts *Options,
	report *model.CreationReport, bar *progressbar.ProgressBar,
) error {
	target := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		return errors.Errorf("cannot create file %v: a directory is in the way", target)

	case err == nil:
		// already there, leave it alone
		return nil

	case os.IsNotExist(err):
		if !opts.DryRun {
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
			if err != nil {
				return errors.Wrapf(err, "creating file %v", target)
			}
			_ = f.Close()
		}

		report.FilesCreated++

		if bar != nil {
			_ = bar.Add(1)
		} else {
			m.console.Printf("%v: %v", utils.IIf(opts.DryRun, "Would create", "Created"), rel)
		}
		return nil

	default:
		return errors.Wrapf(err, "stat %v", target)
	}
}
