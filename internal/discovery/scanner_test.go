package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"tests/unit/UserTest.php",
		"tests/unit/PaymentTest.php",
		"tests/integration/OrderTest.php",
		"vendor/lib/LibTest.php",
		"node_modules/pkg/PkgTest.php",
		"tests/unit/helper.php",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor", "node_modules"})

	t.Run("matches pattern and prunes denied dirs", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir, "*Test.php")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
		for _, r := range results {
			base := filepath.Base(filepath.Dir(r))
			if base == "lib" || base == "pkg" {
				t.Errorf("file from denied directory leaked: %s", r)
			}
		}
	})

	t.Run("override pattern", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir, "Payment*.php")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 match, got %d", len(results))
		}
	})

	t.Run("non-existent root returns empty, not error", func(t *testing.T) {
		results, err := scanner.Scan("/non/existent/path", "*Test.php")
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty result, got %d", len(results))
		}
	})

	t.Run("file root returns empty", func(t *testing.T) {
		f := filepath.Join(tmpDir, "plain.txt")
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		results, err := scanner.Scan(f, "*")
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty result, got %d", len(results))
		}
	})

	t.Run("skips hidden directories", func(t *testing.T) {
		hidden := filepath.Join(tmpDir, ".cache", "HiddenTest.php")
		if err := os.MkdirAll(filepath.Dir(hidden), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(hidden, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		results, err := scanner.Scan(tmpDir, "HiddenTest.php")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected hidden dir to be pruned, got %v", results)
		}
	})
}
