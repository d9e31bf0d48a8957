package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rms-studio/scaffold/lib/scaffold"
)

func TestCreateInEmptyRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	ws, err := scaffold.NewWorkspace(root, "")
	assert.Nil(t, err)

	cmd := CreateCmd{}
	err = cmd.Run(&context{ws: ws})
	assert.Nil(t, err)

	info, err := os.Stat(filepath.Join(root, "src", "components", "layout", "AppShell.tsx"))
	assert.Nil(t, err)
	assert.Equal(t, int64(0), info.Size())

	info, err = os.Stat(filepath.Join(root, "src-tauri", "src", "error.rs"))
	assert.Nil(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestCreateThenVerify(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	ws, err := scaffold.NewWorkspace(root, "")
	assert.Nil(t, err)

	create := CreateCmd{}
	assert.Nil(t, create.Run(&context{ws: ws}))

	verify := VerifyCmd{}
	assert.Nil(t, verify.Run(&context{ws: ws}))
}

func TestVerifyEmptyRootFails(t *testing.T) {
	t.Parallel()

	ws, err := scaffold.NewWorkspace(t.TempDir(), "")
	assert.Nil(t, err)

	verify := VerifyCmd{}
	assert.NotNil(t, verify.Run(&context{ws: ws}))
}

func TestCreateIsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	ws, err := scaffold.NewWorkspace(root, "")
	assert.Nil(t, err)

	cmd := CreateCmd{}
	assert.Nil(t, cmd.Run(&context{ws: ws}))

	target := filepath.Join(root, "docs", "API.md")
	assert.Nil(t, os.WriteFile(target, []byte("# API"), 0o644))

	assert.Nil(t, cmd.Run(&context{ws: ws}))

	data, err := os.ReadFile(target)
	assert.Nil(t, err)
	assert.Equal(t, "# API", string(data))
}
