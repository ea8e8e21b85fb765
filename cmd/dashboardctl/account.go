package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gameforge/arcade-dashboard/internal/models"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List tool categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the server has an Arcade API key and which data it serves",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Show the current user and provider connections",
	Args:  cobra.NoArgs,
	RunE:  runAuth,
}

// configStatus mirrors the /api/config/status response.
type configStatus struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
	Mode       string `json:"mode"`
}

func runCategories(cmd *cobra.Command, _ []string) error {
	var list models.CategoryList
	if err := newClient().getJSON("/api/categories", nil, &list); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, list)
	}
	rows := make([][]string, 0, len(list.Data))
	for _, c := range list.Data {
		rows = append(rows, []string{c})
	}
	printTable(out, []string{"Category"}, rows)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	var status configStatus
	if err := newClient().getJSON("/api/config/status", nil, &status); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, status)
	}
	printTable(out, []string{"Configured", "Mode", "Message"}, [][]string{
		{strconv.FormatBool(status.Configured), status.Mode, status.Message},
	})
	return nil
}

func runAuth(cmd *cobra.Command, _ []string) error {
	var status models.AuthStatus
	if err := newClient().getJSON("/api/auth/status", nil, &status); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, status)
	}
	rows := make([][]string, 0, len(status.Connections))
	for _, c := range status.Connections {
		rows = append(rows, []string{c.Provider, string(c.Status), strings.Join(c.Scopes, ", ")})
	}
	printTable(out, []string{"Provider", "Status", "Scopes"}, rows)
	return nil
}
