package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

const runConfig = `
log:
  level: error
workloads:
  background:
    - name: alpha
      duration: 1ms
  root:
    name: main
    duration: 1ms
`

func TestRunCmd(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/minirt/cmd/config.yaml"
	require.NoError(t, afs.New().Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(runConfig)))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--config", URL})
	require.NoError(t, cmd.ExecuteContext(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Runtime started...", lines[0])
	assert.Equal(t, "alpha: start", lines[1])
	assert.Equal(t, "alpha: done", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "main: done after "))
}

func TestRunCmd_MissingConfig(t *testing.T) {
	err := executeContext(context.Background(), "run", "--config", "mem://localhost/minirt/cmd/missing.yaml")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "minirt 0.1.0\n", out.String())
}

func executeContext(ctx context.Context, args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
