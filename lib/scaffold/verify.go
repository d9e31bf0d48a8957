package scaffold

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rms-studio/scaffold/lib/model"
)

type VerifyReport struct {
	// Missing lists declared paths that do not exist, relative to the
	// root and slash-separated.
	Missing []string

	// WrongKind lists paths where a file sits in a declared directory's
	// place or the other way around.
	WrongKind []string
}

func (r *VerifyReport) Ok() bool {
	return len(r.Missing) == 0 && len(r.WrongKind) == 0
}

// Verify checks that every declared directory and file exists under
// root. It never writes anything.
func (m *Materializer) Verify(root string, s *model.Structure) (*VerifyReport, error) {
	report := &VerifyReport{}

	for _, g := range s.Groups() {
		if err := checkPath(root, g.Dir, true, report); err != nil {
			return nil, err
		}

		for _, f := range g.Files {
			if err := checkPath(root, path.Join(g.Dir, f), false, report); err != nil {
				return nil, err
			}
		}
	}

	for _, extra := range s.Extras {
		if err := checkPath(root, extra, false, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func checkPath(root, rel string, wantDir bool, report *VerifyReport) error {
	info, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	switch {
	case err == nil && info.IsDir() != wantDir:
		report.WrongKind = append(report.WrongKind, rel)
		return nil

	case err == nil:
		return nil

	case os.IsNotExist(err):
		report.Missing = append(report.Missing, rel)
		return nil

	default:
		return errors.Wrapf(err, "stat %v", rel)
	}
}
