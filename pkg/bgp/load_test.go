package bgp

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rel.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestFile(t, "# comment\n100|200|-1\n200|300|0\n\n")

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !g.CustomerRel(100, 200) {
		t.Error("expected 200 to be a customer of 100")
	}
	if !g.ProviderRel(200, 100) {
		t.Error("expected 100 to be a provider of 200")
	}
	if !g.PeerRel(200, 300) {
		t.Error("expected 200 and 300 to be peers")
	}
	if g.Conesize(100) != 2 {
		t.Errorf("Conesize(100) = %d, want 2", g.Conesize(100))
	}
}

func TestLoadInvalidRelCode(t *testing.T) {
	path := writeTestFile(t, "100|200|5\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown relationship code")
	}
}

func TestLoadMalformedLine(t *testing.T) {
	path := writeTestFile(t, "100|200\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/rel.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
