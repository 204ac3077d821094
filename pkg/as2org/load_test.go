package as2org

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "as2org.txt")
	content := "# comment\n100|Acme Corp\n200|Acme Corp\n300|Globex\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !m.SameOrg(100, 200) {
		t.Error("expected 100 and 200 to share an org")
	}
	if m.SameOrg(100, 300) {
		t.Error("expected 100 and 300 to not share an org")
	}
	siblings := m.Siblings(100)
	if _, ok := siblings[200]; !ok {
		t.Error("expected 200 in 100's siblings")
	}
}

func TestLoadMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "as2org.txt")
	if err := os.WriteFile(path, []byte("100\n"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/as2org.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
