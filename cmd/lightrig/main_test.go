package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightrig/lightrig"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightrig.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := lightrig.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, lightrig.DefaultConfig().Window, cfg.Window)
}

func TestConfigInitKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightrig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0644))

	_, err := execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug: true\n", string(data))
}

func TestKeysPrintsReboundTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightrig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bindings:\n  toggle_state: x\n"), 0644))

	out, err := execute(t, "--config", path, "keys")
	require.NoError(t, err)

	var toggle []string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) >= 2 && fields[1] == "toggle_state" {
			toggle = fields
		}
	}
	require.NotNil(t, toggle, out)
	assert.Equal(t, "x", toggle[0])
	assert.Contains(t, out, "next")
}

func TestKeysRejectsMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "typo.yaml"), "keys")
	assert.Error(t, err)
}

func TestSetupAppliesCameraBasis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightrig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  yaw: 90\n"), 0644))

	s, err := setup(&options{configPath: path}, lightrig.NewNopLogger())
	require.NoError(t, err)

	lights := s.ctrl.Lights()
	start := lights.Point[0].Position
	s.ctrl.UpdateDeltaTime(1)
	s.ctrl.SwitchLightType(lightrig.LightPoint)
	s.ctrl.TranslateCurrentLight(lightrig.DirFront)

	assert.InDelta(t, start.X()+lightrig.DefaultMovementSpeed, lights.Point[0].Position.X(), 1e-5)
	assert.InDelta(t, start.Z(), lights.Point[0].Position.Z(), 1e-5)
}
