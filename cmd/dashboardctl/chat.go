package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gameforge/arcade-dashboard/internal/chat"
)

var conversationID string

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send a message to the dashboard chat agent",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&conversationID, "conversation", "", "Continue an existing conversation")
}

func runChat(cmd *cobra.Command, args []string) error {
	req := chat.Request{
		Message: strings.Join(args, " "),
		Context: chat.Context{ConversationID: conversationID, CurrentPage: "cli"},
	}

	var reply chat.Reply
	if err := newClient().postJSON("/api/chat", req, &reply); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if structured() {
		return printOutput(out, reply)
	}
	fmt.Fprintln(out, reply.Message.Content)
	fmt.Fprintf(out, "\n(conversation %s, agent %s)\n", reply.ConversationID, reply.Agent)
	return nil
}
