// Package main provides a minimal HTTP healthcheck binary for the dashboard
// container. It exits 0 when the probed endpoint answers 2xx and 1 otherwise.
// Usage: healthcheck [--timeout 5s] [url]
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"
)

const defaultURL = "http://localhost:8080/readyz"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("healthcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Duration("timeout", 5*time.Second, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	url := defaultURL
	if fs.NArg() > 0 {
		url = fs.Arg(0)
	}
	client := &http.Client{Timeout: *timeout}

	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(stderr, "healthcheck failed: %v\n", err)
		return 1
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return 0
	}

	fmt.Fprintf(stderr, "healthcheck failed: status %d\n", resp.StatusCode)
	return 1
}
