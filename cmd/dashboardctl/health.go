package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server liveness, readiness and data mode",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

type probeResult struct {
	Status     string            `json:"status" yaml:"status"`
	SystemInfo map[string]string `json:"system_info,omitempty" yaml:"system_info,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client := newClient()

	var live probeResult
	if err := client.getJSON("/healthz", nil, &live); err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}

	// a server that is still wiring its data source answers /healthz only
	var ready probeResult
	if err := client.getJSON("/readyz", nil, &ready); err != nil {
		ready = probeResult{Status: "unknown", Error: err.Error()}
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, map[string]probeResult{
			"liveness":  live,
			"readiness": ready,
		})
	}

	mode := ready.SystemInfo["mode"]
	if mode == "" {
		mode = "-"
	}
	printTable(out, []string{"Check", "Status", "Detail"}, [][]string{
		{"Liveness", live.Status, "version " + live.SystemInfo["version"]},
		{"Readiness", ready.Status, "mode " + mode},
	})
	return nil
}
