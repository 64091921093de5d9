package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anonymousfse26/orbis/internal/config"
	"github.com/anonymousfse26/orbis/internal/domain"
	m "github.com/anonymousfse26/orbis/internal/model"
)

func TestViewCmd(t *testing.T) {
	t.Run("default output directory", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t)

		mockWorkflow.EXPECT().View(domain.ViewArgs{OutputDir: m.Path(config.Default().OutputDir)}).Return(nil)

		cmd.SetArgs([]string{"view"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("flag", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t)

		mockWorkflow.EXPECT().View(domain.ViewArgs{OutputDir: "session-1"}).Return(nil)

		cmd.SetArgs([]string{"view", "-d", "session-1"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("config file", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t)

		path := filepath.Join(t.TempDir(), "orbis.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: from-config\n"), 0o600))

		mockWorkflow.EXPECT().View(domain.ViewArgs{OutputDir: "from-config"}).Return(nil)

		cmd.SetArgs([]string{"view", "--config", path})
		require.NoError(t, cmd.Execute())
	})

	t.Run("error", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t)
		wantErr := errors.New("no records")

		mockWorkflow.EXPECT().View(domain.ViewArgs{OutputDir: "x"}).Return(wantErr)

		cmd.SetArgs([]string{"view", "-d", "x"})
		require.ErrorIs(t, cmd.Execute(), wantErr)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t)

		cmd.SetArgs([]string{"view", "extra"})
		require.Error(t, cmd.Execute())
	})
}
