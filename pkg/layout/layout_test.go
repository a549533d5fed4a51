package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoobzio/vista"
)

const validYAML = `
viewport_height: 800
elements:
  hero:
    top: 100
    bottom: 200
  footer:
    top: 1900
    bottom: 2000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestParse_YAML(t *testing.T) {
	l, err := Parse([]byte(validYAML), YAMLCodec{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if l.ViewportHeight != 800 {
		t.Errorf("expected viewport 800, got %v", l.ViewportHeight)
	}
	if l.Elements["hero"] != (vista.Rect{Top: 100, Bottom: 200}) {
		t.Errorf("unexpected hero bounds %v", l.Elements["hero"])
	}
	names := l.Names()
	if len(names) != 2 || names[0] != "footer" || names[1] != "hero" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestParse_JSON(t *testing.T) {
	data := `{"viewport_height": 600, "elements": {"card": {"top": 10, "bottom": 20}}}`
	l, err := Parse([]byte(data), JSONCodec{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if l.Elements["card"].Bottom != 20 {
		t.Errorf("unexpected card bounds %v", l.Elements["card"])
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", "empty layout"},
		{"malformed", "viewport_height: [", "unmarshal failed"},
		{"no elements", "viewport_height: 800", "validation failed"},
		{"negative viewport", "viewport_height: -1\nelements:\n  a: {top: 1, bottom: 2}", "validation failed"},
		{"inverted element", "viewport_height: 800\nelements:\n  a: {top: 5, bottom: 1}", "bottom 1 is above top 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), YAMLCodec{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "layout.yaml", validYAML)
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(l.Elements) != 2 {
		t.Errorf("expected 2 elements, got %d", len(l.Elements))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCodecFor(t *testing.T) {
	if _, ok := CodecFor("layout.JSON").(JSONCodec); !ok {
		t.Error("expected JSON codec for .JSON")
	}
	if _, ok := CodecFor("layout.yml").(YAMLCodec); !ok {
		t.Error("expected YAML codec for .yml")
	}
	if CodecFor("x.json").ContentType() != "application/json" {
		t.Error("unexpected JSON content type")
	}
	if CodecFor("x.yaml").ContentType() != "application/x-yaml" {
		t.Error("unexpected YAML content type")
	}
}
