package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

const heapText = "    [7]\n        [3]\n[10]\n        [2]\n    [5]\n        [1]\n"

func TestRenderText(t *testing.T) {
	out, logs, err := execute(t, "render", "../../examples/heap.json", "-t", "heap")
	if err != nil {
		t.Fatalf("render error: %v (logs: %s)", err, logs)
	}
	if out != heapText+"\n" {
		t.Errorf("render output =\n%q\nwant\n%q", out, heapText+"\n")
	}
}

func TestRenderExamples(t *testing.T) {
	tests := []struct {
		file string
		typ  string
		want string
	}{
		{"graph.yaml", "graph", "A -> B, C\nB -> D\nC -> D\nD -> \n"},
		{"hash_table.yaml", "hashTable", "[0]: {apple: 5}\n[1]: null\n[2]: {banana: 7}\n"},
		{"trie.yaml", "trie", "c\n  a\n    t\n    r\n"},
		{"dp_matrix.json", "dpMatrix", "  0   1   2\n  1   0   1\n  2   1   0\n"},
		{"binary_tree.yaml", "binaryTree", "        [20]\n    [15]\n[10]\n        [7]\n    [5]\n        [1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			out, logs, err := execute(t, "render", filepath.Join("../../examples", tt.file), "-t", tt.typ)
			if err != nil {
				t.Fatalf("render error: %v (logs: %s)", err, logs)
			}
			if out != tt.want+"\n" {
				t.Errorf("render output =\n%q\nwant\n%q", out, tt.want+"\n")
			}
		})
	}
}

func TestRenderLabelAndDepth(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "array.yaml")
	if err := os.WriteFile(input, []byte("[5, 3, 8]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "render", input, "-t", "array", "--label", "Initial Array")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if want := "Initial Array: [5] -> [3] -> [8]\n\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, _, err = execute(t, "render", "../../examples/heap.json", "-t", "heap", "--max-depth", "1")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if want := "[10]\n\n"; out != want {
		t.Errorf("depth-limited output = %q, want %q", out, want)
	}
}

func TestRenderUnknownType(t *testing.T) {
	out, logs, err := execute(t, "render", "../../examples/heap.json", "-t", "splayTree")
	if err != nil {
		t.Fatalf("unknown type should not fail, got %v", err)
	}
	if out != "" {
		t.Errorf("unknown type wrote %q", out)
	}
	if !strings.Contains(logs, "Unknown visualization type") {
		t.Errorf("logs = %q, want unknown type diagnostic", logs)
	}
}

func TestRenderDOT(t *testing.T) {
	out, _, err := execute(t, "render", "../../examples/binary_tree.yaml", "-t", "binaryTree", "-f", "dot")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph ") {
		t.Errorf("dot output = %q", out)
	}
}

func TestRenderOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.txt")

	out, _, err := execute(t, "render", "../../examples/heap.json", "-t", "heap", "-o", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(data) != heapText {
		t.Errorf("file content = %q, want %q", data, heapText)
	}
	if !strings.Contains(out, iconSuccess) || !strings.Contains(out, path) {
		t.Errorf("stdout = %q, want success line with path", out)
	}
}

func TestRenderConfigFormat(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("format = \"dot\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "render", "../../examples/graph.yaml", "-t", "graph", "--config", cfg)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph ") {
		t.Errorf("config format ignored, output = %q", out)
	}

	out, _, err = execute(t, "render", "../../examples/graph.yaml", "-t", "graph", "--config", cfg, "-f", "text")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "A -> B, C\n") {
		t.Errorf("format flag should override config, output = %q", out)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", "/nonexistent/data.json", "-t", "heap"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", "../../examples/heap.json", "-t", "heap", "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"negative depth", []string{"render", "../../examples/heap.json", "-t", "heap", "--max-depth=-2"}, errors.ErrCodeInvalidInput},
		{"wrong shape", []string{"render", "../../examples/graph.yaml", "-t", "heap"}, errors.ErrCodeInvalidShape},
		{"no dot export", []string{"render", "../../examples/dp_matrix.json", "-t", "dpMatrix", "-f", "dot"}, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}
