package checks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// Runtime describes the optional local inference runtime (Ollama) the stack
// can use for LLM requests.
type Runtime struct {
	// BaseURL is the runtime's base URL, e.g. http://localhost:11434.
	BaseURL string
	// Client performs the liveness query; nil uses a short-timeout default.
	Client *http.Client
	// LookPath and Start are exec seams; nil uses the real exec package.
	LookPath func(file string) (string, error)
	Start    func() (*os.Process, error)
}

// NewRuntime constructs a Runtime for the given base URL.
func NewRuntime(baseURL string) Runtime {
	return Runtime{BaseURL: baseURL}
}

// Installed reports whether the runtime binary is on PATH.
func (r Runtime) Installed() bool {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath("ollama")
	return err == nil
}

// Responding performs a one-shot liveness query against the runtime's model
// listing endpoint.
func (r Runtime) Responding(ctx context.Context) bool {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 3 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// StartDetached launches the runtime's serve process in the background and
// returns its process handle. The caller deliberately does not wait on the
// handle; readiness is assumed after a fixed grace delay, not polled.
func (r Runtime) StartDetached() (*os.Process, error) {
	if r.Start != nil {
		return r.Start()
	}

	cmd := exec.Command("ollama", "serve")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ollama serve: %w", err)
	}
	return cmd.Process, nil
}
