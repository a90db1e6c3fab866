package execution

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"tex/internal/adapter"
	"tex/internal/domain"
)

// GracePeriod is the fixed wait between the graceful and forceful
// termination signals after a deadline fires.
const GracePeriod = 5 * time.Second

// Outcome is the terminal result of one controlled process execution.
type Outcome struct {
	Status   domain.RunStatus
	Output   string
	ExitCode int
	Duration time.Duration
}

// Controller spawns one external process per invocation, buffers its
// combined output, and resolves it to a terminal outcome. The invocation
// deadline is the only thing that can terminate a running process early;
// on expiry the controller escalates from SIGTERM to SIGKILL.
type Controller struct {
	grace time.Duration
}

// NewController creates a Controller with the default grace period.
func NewController() *Controller {
	return &Controller{grace: GracePeriod}
}

// Run executes the recipe for a single invocation. Conditions the engine
// understands never surface as errors; they are encoded in the Outcome
// status. exit 0 -> passed, non-zero exit -> failed, OS-level execution
// error -> errored, deadline expiry -> timed-out.
func (c *Controller) Run(inv domain.Invocation, recipe adapter.Recipe) Outcome {
	cmd := exec.Command(recipe.Executable, recipe.Args...)
	cmd.Dir = inv.WorkDir

	// One buffer on both streams keeps bytes in arrival order; os/exec
	// serializes writes when Stdout and Stderr are the same writer.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	cmd.Env = os.Environ()
	for k, v := range inv.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	// Frameworks that sniff a TTY still emit consistent output this way.
	cmd.Env = append(cmd.Env, "CI=true", "FORCE_COLOR=1")

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Outcome{
			Status:   domain.StatusErrored,
			Output:   err.Error(),
			ExitCode: -1,
			Duration: time.Since(start),
		}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	deadline := time.NewTimer(inv.EffectiveTimeout())
	defer deadline.Stop()

	select {
	case err := <-done:
		return resolve(err, &buf, start)
	case <-deadline.C:
		c.terminate(cmd, done)
		return Outcome{
			Status:   domain.StatusTimedOut,
			Output:   buf.String(),
			ExitCode: -1,
			Duration: time.Since(start),
		}
	}
}

// terminate escalates: SIGTERM first, SIGKILL if the process has not exited
// after the grace window. It returns once the process is gone.
func (c *Controller) terminate(cmd *exec.Cmd, done <-chan error) {
	_ = cmd.Process.Signal(syscall.SIGTERM)
	grace := time.NewTimer(c.grace)
	defer grace.Stop()
	select {
	case <-done:
	case <-grace.C:
		_ = cmd.Process.Kill()
		<-done
	}
}

func resolve(err error, buf *bytes.Buffer, start time.Time) Outcome {
	out := Outcome{Output: buf.String(), Duration: time.Since(start)}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		out.Status = domain.StatusPassed
	case errors.As(err, &exitErr):
		out.Status = domain.StatusFailed
		out.ExitCode = exitErr.ExitCode()
	default:
		out.Status = domain.StatusErrored
		out.ExitCode = -1
		out.Output = strings.TrimSpace(out.Output + "\n" + err.Error())
	}
	return out
}
