package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tex/internal/domain"
)

// ErrUnsupportedFramework is returned when no adapter is registered for a
// framework identifier. This is a configuration error, not a runtime one.
var ErrUnsupportedFramework = errors.New("unsupported framework")

// Recipe is the concrete command to spawn for one invocation.
type Recipe struct {
	Executable string
	Args       []string
}

// Adapter is the static invocation recipe for one framework: how to build
// the command, which file names are its tests, and which output grammar the
// summary parser should apply.
type Adapter struct {
	FilePattern string
	Grammar     string
	command     func(inv domain.Invocation) Recipe
}

// The registry is built once at init and never mutated, so no
// synchronization is needed.
var registry = map[domain.Framework]Adapter{
	domain.Jest: {
		FilePattern: "*.test.js",
		Grammar:     "jest",
		command: func(inv domain.Invocation) Recipe {
			return Recipe{"npx", []string{"jest", inv.TargetPath, "--colors"}}
		},
	},
	domain.Mocha: {
		FilePattern: "*.spec.js",
		Grammar:     "mocha",
		command: func(inv domain.Invocation) Recipe {
			return Recipe{"npx", []string{"mocha", inv.TargetPath, "--reporter", "spec"}}
		},
	},
	domain.Pytest: {
		FilePattern: "test_*.py",
		Grammar:     "pytest",
		command: func(inv domain.Invocation) Recipe {
			return Recipe{"python", []string{"-m", "pytest", inv.TargetPath, "-v"}}
		},
	},
	domain.PHPUnit: {
		FilePattern: "*Test.php",
		Grammar:     "phpunit",
		command:     phpunitCommand,
	},
	domain.JUnit: {
		FilePattern: "*Test.java",
		Grammar:     "junit",
		command:     junitCommand,
	},
	domain.GoTest: {
		FilePattern: "*_test.go",
		Grammar:     "gotest",
		command: func(inv domain.Invocation) Recipe {
			return Recipe{"go", []string{"test", "-v", inv.TargetPath}}
		},
	},
}

// Lookup returns the adapter registered for a framework identifier.
func Lookup(fw domain.Framework) (Adapter, error) {
	a, ok := registry[fw]
	if !ok {
		return Adapter{}, fmt.Errorf("%w: %s", ErrUnsupportedFramework, fw)
	}
	return a, nil
}

// Command resolves the concrete recipe for an invocation. Build-tool-backed
// frameworks probe the working directory for manifest files first.
func Command(inv domain.Invocation) (Recipe, error) {
	a, err := Lookup(inv.Framework)
	if err != nil {
		return Recipe{}, err
	}
	return a.command(inv), nil
}

// FilePattern returns the discovery pattern for a framework.
func FilePattern(fw domain.Framework) (string, error) {
	a, err := Lookup(fw)
	if err != nil {
		return "", err
	}
	return a.FilePattern, nil
}

// Grammar returns the output-grammar identifier for a framework.
func Grammar(fw domain.Framework) (string, error) {
	a, err := Lookup(fw)
	if err != nil {
		return "", err
	}
	return a.Grammar, nil
}

// probe pairs build-tool manifest names with the recipe to use when one of
// them is present. Probes are evaluated in order, first match wins.
type probe struct {
	manifests []string
	recipe    Recipe
}

func anyManifest(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

func phpunitCommand(inv domain.Invocation) Recipe {
	probes := []probe{
		{
			manifests: []string{"composer.json", "composer.lock"},
			recipe:    Recipe{filepath.Join("vendor", "bin", "phpunit"), []string{inv.TargetPath}},
		},
	}
	for _, p := range probes {
		if anyManifest(inv.WorkDir, p.manifests) {
			return p.recipe
		}
	}
	return Recipe{"phpunit", []string{inv.TargetPath}}
}

func junitCommand(inv domain.Invocation) Recipe {
	class := classNameOf(inv.TargetPath)
	probes := []probe{
		{
			manifests: []string{"pom.xml"},
			recipe:    Recipe{"mvn", []string{"-q", "test", "-Dtest=" + class}},
		},
		{
			manifests: []string{"build.gradle", "build.gradle.kts"},
			recipe:    Recipe{"gradle", []string{"test", "--tests", class}},
		},
	}
	for _, p := range probes {
		if anyManifest(inv.WorkDir, p.manifests) {
			return p.recipe
		}
	}
	return Recipe{"java", []string{"-jar", "junit-platform-console-standalone.jar", "--select-class", class}}
}

func classNameOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".java")
}
