package domain

import "time"

// DefaultTimeout bounds a single test invocation unless the caller overrides it.
const DefaultTimeout = 60 * time.Second

// Invocation is one request to execute a single test target under a single
// framework.
type Invocation struct {
	Framework  Framework
	TargetPath string            // absolute path to the test target
	WorkDir    string            // working directory for the spawned process
	Timeout    time.Duration     // zero means DefaultTimeout
	Env        map[string]string // layered over the inherited environment
}

// EffectiveTimeout returns the caller override or the default deadline.
func (inv Invocation) EffectiveTimeout() time.Duration {
	if inv.Timeout > 0 {
		return inv.Timeout
	}
	return DefaultTimeout
}
