package domain

import "fmt"

// Framework identifies an externally installed test framework the engine
// knows how to invoke.
type Framework string

const (
	Jest    Framework = "jest"
	Mocha   Framework = "mocha"
	Pytest  Framework = "pytest"
	PHPUnit Framework = "phpunit"
	JUnit   Framework = "junit"
	GoTest  Framework = "gotest"
)

// Frameworks lists every supported framework identifier.
var Frameworks = []Framework{Jest, Mocha, Pytest, PHPUnit, JUnit, GoTest}

// ParseFramework converts a user-supplied string into a Framework.
func ParseFramework(s string) (Framework, error) {
	for _, f := range Frameworks {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown framework %q", s)
}
