package cli

import "tex/internal/config"

// Flags holds command-line flags.
type Flags struct {
	Framework string
	Pattern   string
	TimeoutMS int
	WorkDir   string
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Framework: f.Framework,
		Pattern:   f.Pattern,
		TimeoutMS: f.TimeoutMS,
		WorkDir:   f.WorkDir,
	}
}
