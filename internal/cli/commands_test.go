package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// runCLI executes the root command with args in an isolated environment.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("HANOI_CONFIG", "")
	t.Cleanup(observability.Reset)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestSolveAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.json")

	if err := runCLI(t, "solve", "3", "-f", "json", "-o", path); err != nil {
		t.Fatalf("solve error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"total_moves": 7`) {
		t.Errorf("export missing total_moves:\n%s", data)
	}

	if err := runCLI(t, "verify", path); err != nil {
		t.Errorf("verify of a fresh solution failed: %v", err)
	}
}

func TestVerifyRejectsIllegalMoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `disks: 2
total_moves: 3
moves:
  - {from: 0, to: 2}
  - {from: 0, to: 2}
  - {from: 1, to: 2}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	err := runCLI(t, "verify", path)
	if err == nil {
		t.Fatal("verify accepted a larger disk on a smaller one")
	}
	if !herrors.Is(err, herrors.ErrCodeInvariant) {
		t.Errorf("error code = %q, want %q", herrors.GetCode(err), herrors.ErrCodeInvariant)
	}
}

func TestSolveRejectsDiskCount(t *testing.T) {
	for _, arg := range []string{"0", "7", "three"} {
		err := runCLI(t, "solve", arg)
		if !herrors.Is(err, herrors.ErrCodeInvalidInput) {
			t.Errorf("solve %s: error = %v, want INVALID_INPUT", arg, err)
		}
	}
}

func TestSolveRejectsFormat(t *testing.T) {
	err := runCLI(t, "solve", "3", "-f", "xml")
	if !herrors.Is(err, herrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")

	if err := runCLI(t, "render", "3", "--after", "7", "-f", "json", "-o", path); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var f struct {
		MoveCount int     `json:"move_count"`
		Stacks    [][]int `json:"stacks"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.MoveCount != 7 || len(f.Stacks[2]) != 3 {
		t.Errorf("got move_count=%d stacks=%v, want all disks on peg 2", f.MoveCount, f.Stacks)
	}
}

func TestRenderCommandText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.txt")

	if err := runCLI(t, "render", "2", "-f", "text", "-o", path); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Moves: 0") {
		t.Errorf("text frame missing status line:\n%s", data)
	}
}

func TestRenderCommandOutOfRange(t *testing.T) {
	err := runCLI(t, "render", "3", "--after", "8")
	if !herrors.Is(err, herrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestTreeCommandDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.dot")

	if err := runCLI(t, "tree", "3", "--dot", "-o", path); err != nil {
		t.Fatalf("tree error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("output is not DOT:\n%s", dot)
	}
	if n := strings.Count(dot, "shape=ellipse"); n != 7 {
		t.Errorf("got %d move leaves, want 7", n)
	}
}
