package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

var (
	listPage     int
	listPerPage  int
	toolCategory string
	toolToolkit  string
	toolQuery    string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List and inspect tools",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools",
	Args:  cobra.NoArgs,
	RunE:  runToolsList,
}

var toolsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsGet,
}

func init() {
	toolsListCmd.Flags().IntVar(&listPage, "page", 0, "Page number (1-based)")
	toolsListCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Items per page (server default when 0)")
	toolsListCmd.Flags().StringVar(&toolCategory, "category", "", "Filter by category")
	toolsListCmd.Flags().StringVar(&toolToolkit, "toolkit", "", "Filter by toolkit")
	toolsListCmd.Flags().StringVarP(&toolQuery, "query", "q", "", "Search name and description")

	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsGetCmd)
}

// pageQuery returns the page parameters that were set.
func pageQuery() url.Values {
	q := url.Values{}
	if listPage > 0 {
		q.Set("page", strconv.Itoa(listPage))
	}
	if listPerPage > 0 {
		q.Set("per_page", strconv.Itoa(listPerPage))
	}
	return q
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	q := pageQuery()
	for key, value := range map[string]string{"category": toolCategory, "toolkit": toolToolkit, "q": toolQuery} {
		if value != "" {
			q.Set(key, value)
		}
	}

	var page pagination.Page[models.Tool]
	if err := newClient().getJSON("/api/tools", q, &page); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, page)
	}

	rows := make([][]string, 0, len(page.Data))
	for _, t := range page.Data {
		rows = append(rows, []string{t.ID, t.Name, t.Category, strconv.FormatBool(t.RequiresAuth), truncate(t.Description, 50)})
	}
	printTable(out, []string{"ID", "Name", "Category", "Auth", "Description"}, rows)
	fmt.Fprintf(out, "\nPage %d, %d of %d tools\n", page.Page, len(page.Data), page.Total)
	return nil
}

func runToolsGet(cmd *cobra.Command, args []string) error {
	var tool models.ToolDetail
	if err := newClient().getJSON("/api/tools/"+url.PathEscape(args[0]), nil, &tool); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, tool)
	}

	rows := [][]string{
		{"ID", tool.ID},
		{"Name", tool.Name},
		{"Category", tool.Category},
		{"Server", tool.ServerID},
		{"Requires auth", strconv.FormatBool(tool.RequiresAuth)},
		{"Description", tool.Description},
	}
	if tool.Version != "" {
		rows = append(rows, []string{"Version", tool.Version})
	}
	printTable(out, []string{"Field", "Value"}, rows)
	return nil
}
