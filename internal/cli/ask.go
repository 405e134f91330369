package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	askPlain      bool
	askOutputFile string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a one-shot question and print the answer",
	Long: `Ask a question and print the backend's answer without opening the UI.

The answer is rendered as Markdown on a terminal; use --plain for raw
text, for example when piping.

Examples:
  promptify ask "What does the onboarding doc say about VPN access?"
  promptify ask "Summarize the Q3 report" --plain
  promptify ask "List open action items" -o answer.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print the raw answer without Markdown rendering")
	askCmd.Flags().StringVarP(&askOutputFile, "output", "o", "", "write the answer to a file")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(args[0])
	if question == "" {
		return fmt.Errorf("question is empty")
	}

	answer, err := apiClient.Query(context.Background(), question)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	if askOutputFile != "" {
		if err := os.WriteFile(askOutputFile, []byte(answer+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Answer written to %s\n", askOutputFile)
		return nil
	}

	if askPlain {
		fmt.Println(answer)
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(terminalWidth()))
	if err != nil {
		// Rendering is cosmetic; fall back to the raw answer.
		fmt.Println(answer)
		return nil
	}
	rendered, err := r.Render(answer)
	if err != nil {
		fmt.Println(answer)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
