package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

var serverStatus string

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List and inspect MCP servers",
}

var serversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers",
	Args:  cobra.NoArgs,
	RunE:  runServersList,
}

var serversGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a server and the tools it hosts",
	Args:  cobra.ExactArgs(1),
	RunE:  runServersGet,
}

func init() {
	serversListCmd.Flags().IntVar(&listPage, "page", 0, "Page number (1-based)")
	serversListCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Items per page (server default when 0)")
	serversListCmd.Flags().StringVar(&serverStatus, "status", "", "Filter by status (active, inactive, error)")

	serversCmd.AddCommand(serversListCmd)
	serversCmd.AddCommand(serversGetCmd)
}

func runServersList(cmd *cobra.Command, _ []string) error {
	q := pageQuery()
	if serverStatus != "" {
		q.Set("status", serverStatus)
	}

	var page pagination.Page[models.Server]
	if err := newClient().getJSON("/api/servers", q, &page); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, page)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, s := range page.Data {
		rows = append(rows, []string{s.ID, s.Name, string(s.Status), strconv.Itoa(s.ToolsCount)})
	}
	printTable(out, []string{"ID", "Name", "Status", "Tools"}, rows)
	fmt.Fprintf(out, "\nPage %d, %d of %d servers\n", page.Page, len(page.Data), page.Total)
	return nil
}

func runServersGet(cmd *cobra.Command, args []string) error {
	var server models.ServerDetail
	if err := newClient().getJSON("/api/servers/"+url.PathEscape(args[0]), nil, &server); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, server)
	}

	printTable(out, []string{"Field", "Value"}, [][]string{
		{"ID", server.ID},
		{"Name", server.Name},
		{"Status", string(server.Status)},
		{"Description", server.Description},
	})
	if len(server.Tools) > 0 {
		fmt.Fprintln(out)
		rows := make([][]string, 0, len(server.Tools))
		for _, t := range server.Tools {
			rows = append(rows, []string{t.ID, t.Name})
		}
		printTable(out, []string{"Tool", "Name"}, rows)
	}
	return nil
}
