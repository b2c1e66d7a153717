package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the command tree with args and returns stdout, stderr and the
// error from Execute.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRootCmd_Help(t *testing.T) {
	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, sub := range []string{"simulate", "validate", "schema"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing %q subcommand:\n%s", sub, out)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output = %q, want it to contain %q", out, version)
	}
}

func TestSchemaCmd(t *testing.T) {
	out, _, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("schema output is not valid JSON:\n%s", out)
	}
	if !strings.Contains(out, `"sampleRate"`) {
		t.Errorf("schema output missing sampleRate property")
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, _, err := execute(t, "bogus"); err == nil {
		t.Error("Execute(bogus) error = nil, want error")
	}
}
