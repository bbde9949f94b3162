package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// modelJSON is a 3 → 2 → 1 network with a ReLU between the layers.
const modelJSON = `{
  "modules": [
    {"name": "", "type": "Sequential"},
    {"name": "0", "type": "Linear"},
    {"name": "1", "type": "ReLU"},
    {"name": "2", "type": "Linear"}
  ],
  "parameters": [
    {"name": "0.weight", "shape": [2, 3], "data": [0.12345, 0.2, 0.3, 0.4, 0.5, 0.6]},
    {"name": "0.bias", "shape": [2], "data": [0.1, 0.2]},
    {"name": "2.weight", "shape": [1, 2], "data": [1, -1]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// isolateConfig points the default config location at an empty directory.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// execute runs the root command with args and returns its captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
