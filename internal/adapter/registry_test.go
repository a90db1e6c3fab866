package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tex/internal/domain"
)

func TestLookup_AllFrameworksRegistered(t *testing.T) {
	for _, fw := range domain.Frameworks {
		t.Run(string(fw), func(t *testing.T) {
			a, err := Lookup(fw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.FilePattern == "" {
				t.Error("expected non-empty file pattern")
			}
			if a.Grammar == "" {
				t.Error("expected non-empty grammar")
			}

			recipe, err := Command(domain.Invocation{Framework: fw, TargetPath: "/tmp/x", WorkDir: t.TempDir()})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if recipe.Executable == "" {
				t.Error("expected non-empty executable")
			}
			if len(recipe.Args) == 0 {
				t.Error("expected non-empty argument list")
			}
		})
	}
}

func TestLookup_UnsupportedFramework(t *testing.T) {
	_, err := Lookup(domain.Framework("vitest"))
	if !errors.Is(err, ErrUnsupportedFramework) {
		t.Errorf("expected ErrUnsupportedFramework, got %v", err)
	}

	_, err = Command(domain.Invocation{Framework: "vitest"})
	if !errors.Is(err, ErrUnsupportedFramework) {
		t.Errorf("expected ErrUnsupportedFramework, got %v", err)
	}
}

func TestJUnitCommand_ManifestProbing(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantExec string
	}{
		{"maven project", "pom.xml", "mvn"},
		{"gradle project", "build.gradle", "gradle"},
		{"kotlin gradle project", "build.gradle.kts", "gradle"},
		{"no manifest falls back to bare recipe", "", "java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.manifest != "" {
				if err := os.WriteFile(filepath.Join(dir, tt.manifest), []byte("x"), 0644); err != nil {
					t.Fatalf("failed to write manifest: %v", err)
				}
			}

			recipe, err := Command(domain.Invocation{
				Framework:  domain.JUnit,
				TargetPath: "/project/src/test/java/OrderTest.java",
				WorkDir:    dir,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if recipe.Executable != tt.wantExec {
				t.Errorf("expected executable %s, got %s", tt.wantExec, recipe.Executable)
			}
		})
	}
}

func TestJUnitCommand_MavenWinsOverGradle(t *testing.T) {
	dir := t.TempDir()
	for _, m := range []string{"pom.xml", "build.gradle"} {
		if err := os.WriteFile(filepath.Join(dir, m), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
	}

	recipe, err := Command(domain.Invocation{Framework: domain.JUnit, TargetPath: "FooTest.java", WorkDir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipe.Executable != "mvn" {
		t.Errorf("expected first probe to win, got %s", recipe.Executable)
	}
}

func TestPHPUnitCommand_ManifestProbing(t *testing.T) {
	t.Run("composer project uses vendor binary", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "composer.json"), []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}

		recipe, err := Command(domain.Invocation{Framework: domain.PHPUnit, TargetPath: "UserTest.php", WorkDir: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recipe.Executable != filepath.Join("vendor", "bin", "phpunit") {
			t.Errorf("expected vendor binary, got %s", recipe.Executable)
		}
	})

	t.Run("bare fallback without manifest", func(t *testing.T) {
		recipe, err := Command(domain.Invocation{Framework: domain.PHPUnit, TargetPath: "UserTest.php", WorkDir: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recipe.Executable != "phpunit" {
			t.Errorf("expected phpunit, got %s", recipe.Executable)
		}
	})
}

func TestAvailable(t *testing.T) {
	t.Run("jest declared in package.json", func(t *testing.T) {
		dir := t.TempDir()
		pkg := `{"devDependencies": {"jest": "^29.0.0"}}`
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0644); err != nil {
			t.Fatalf("failed to write package.json: %v", err)
		}

		if !Available(domain.Jest, dir) {
			t.Error("expected jest to be available")
		}
		if Available(domain.Mocha, dir) {
			t.Error("expected mocha to be unavailable")
		}
	})

	t.Run("gotest via go.mod", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x"), 0644); err != nil {
			t.Fatalf("failed to write go.mod: %v", err)
		}
		if !Available(domain.GoTest, dir) {
			t.Error("expected gotest to be available")
		}
	})

	t.Run("empty directory has nothing", func(t *testing.T) {
		dir := t.TempDir()
		for _, fw := range domain.Frameworks {
			if Available(fw, dir) {
				t.Errorf("expected %s to be unavailable in empty dir", fw)
			}
		}
	})
}
