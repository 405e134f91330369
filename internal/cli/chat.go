package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptify/internal/chat"
	"promptify/internal/docs"
	"promptify/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat UI",
	Long: `Open the interactive terminal UI with the chat and document views.

This is also what bare promptify runs.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	chatStore := chat.NewStore()
	chatStore.NewSession()
	chatSvc := chat.NewService(chatStore, apiClient, logger)
	docStore := docs.NewStore()

	app := tui.NewApp(chatSvc, docStore, apiClient, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
