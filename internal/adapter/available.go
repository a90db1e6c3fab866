package adapter

import (
	"os"
	"path/filepath"
	"strings"

	"tex/internal/domain"
)

// Available reports whether a framework looks usable in a working directory.
// This is a static manifest check used for pre-flight validation; it spawns
// no process and proves nothing about whether an invocation will succeed.
func Available(fw domain.Framework, dir string) bool {
	switch fw {
	case domain.Jest:
		return manifestMentions(filepath.Join(dir, "package.json"), "jest")
	case domain.Mocha:
		return manifestMentions(filepath.Join(dir, "package.json"), "mocha")
	case domain.Pytest:
		return manifestMentions(filepath.Join(dir, "requirements.txt"), "pytest") ||
			manifestMentions(filepath.Join(dir, "pyproject.toml"), "pytest")
	case domain.PHPUnit:
		if _, err := os.Stat(filepath.Join(dir, "vendor", "bin", "phpunit")); err == nil {
			return true
		}
		return manifestMentions(filepath.Join(dir, "composer.json"), "phpunit/phpunit")
	case domain.JUnit:
		return anyManifest(dir, []string{"pom.xml", "build.gradle", "build.gradle.kts"})
	case domain.GoTest:
		return anyManifest(dir, []string{"go.mod"})
	}
	return false
}

func manifestMentions(path, needle string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), needle)
}
