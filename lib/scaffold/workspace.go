package scaffold

import (
	"github.com/rms-studio/scaffold/lib/consoles"
	"github.com/rms-studio/scaffold/lib/model"
	"github.com/rms-studio/scaffold/lib/rms"
	"github.com/rms-studio/scaffold/lib/specfile"
	"github.com/rms-studio/scaffold/lib/utils"
)

// Workspace ties together the root directory, the structure to
// materialize and the console the run reports to.
type Workspace struct {
	console   consoles.Console
	root      string
	structure *model.Structure
}

// NewWorkspace anchors a workspace at root (the current directory when
// empty). When spec is given, the structure is loaded from that file
// instead of the built-in Research Management System layout.
func NewWorkspace(root string, spec string) (*Workspace, error) {
	if root == "" {
		root = "."
	}

	root, err := utils.PathAbs(root)
	if err != nil {
		return nil, err
	}

	structure := rms.Structure()
	if spec != "" {
		structure, err = specfile.Load(spec)
		if err != nil {
			return nil, err
		}
	}

	return &Workspace{
		console:   consoles.NewStdOutConsole(),
		root:      root,
		structure: structure,
	}, nil
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Structure() *model.Structure {
	return w.structure
}

func (w *Workspace) Materialize(opts *Options) (*model.CreationReport, error) {
	return New(w.console).Materialize(w.root, w.structure, opts)
}

func (w *Workspace) Verify() (*VerifyReport, error) {
	return New(w.console).Verify(w.root, w.structure)
}
