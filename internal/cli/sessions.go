package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptify/internal/chat"
)

var sessionsDeleteForce bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage server-side chat sessions",
	Long: `List, inspect, and delete chat sessions stored on the backend.

Subcommands:
  list    List sessions (default)
  show    Print a session's messages
  new     Create a session
  delete  Delete a session

Examples:
  promptify sessions
  promptify sessions show 3f2a...
  promptify sessions new "Release planning"
  promptify sessions delete 3f2a... --force`,
	RunE: runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a session's messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionsNew,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	sessionsDeleteCmd.Flags().BoolVarP(&sessionsDeleteForce, "force", "f", false, "skip confirmation")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsNewCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	sessions, err := apiClient.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	fmt.Printf("Sessions (%d):\n\n", len(sessions))
	for _, s := range sessions {
		fmt.Printf("- %s (%d messages)\n", s.Title, len(s.Messages))
		if verbose {
			fmt.Printf("  id: %s, updated: %s\n", s.ID, s.UpdatedAt.Format("2006-01-02 15:04"))
			if last := s.LastMessage(); last != nil {
				fmt.Printf("  last: [%s] %.60s\n", last.Role.DisplayName(), last.Content)
			}
		}
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	session, err := apiClient.GetSession(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	fmt.Printf("%s\n\n", session.Title)
	for _, msg := range session.Messages {
		fmt.Printf("[%s] %s\n%s\n\n",
			msg.Timestamp.Format("15:04"), msg.Role.DisplayName(), msg.Content)
	}
	return nil
}

func runSessionsNew(cmd *cobra.Command, args []string) error {
	title := chat.DefaultTitle
	if len(args) == 1 && args[0] != "" {
		title = args[0]
	}

	session, err := apiClient.CreateSession(context.Background(), title)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	fmt.Printf("Created: %s (%s)\n", session.Title, session.ID)
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !sessionsDeleteForce {
		fmt.Printf("About to delete session %s.\n", id)
		if !confirm() {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := apiClient.DeleteSession(context.Background(), id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	fmt.Printf("Deleted: %s\n", id)
	return nil
}
