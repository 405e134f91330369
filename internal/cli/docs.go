package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"promptify/internal/docs"
)

var (
	docsSearch string
	docsSort   string
	docsOrder  string
	docsIDs    bool

	docsAddName string

	docsDeleteForce bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the document collection",
	Long: `Manage the documents the assistant answers from.

Subcommands:
  list     List documents (default)
  add      Add a text document
  upload   Upload a local file
  add-url  Register a link for server-side ingestion
  delete   Delete documents by id

Examples:
  promptify docs
  promptify docs list --search onboarding --sort name
  promptify docs add "Meeting notes" --name "Standup 2026-08-31"
  promptify docs upload ./report.pdf
  promptify docs add-url https://example.com/article
  promptify docs delete 3f2a... --force`,
	RunE: runDocsList,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a text document",
	Long: `Add a text document. Content comes from the argument, or from stdin
when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocsAdd,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUpload,
}

var docsAddURLCmd = &cobra.Command{
	Use:   "add-url <url>",
	Short: "Register a link for server-side ingestion",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsAddURL,
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete documents by id",
	Long: `Delete one or more documents by id.

Each id is deleted independently; one failure does not abort the rest.
Requires confirmation unless --force is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocsDelete,
}

func init() {
	listFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&docsSearch, "search", "s", "", "filter by name or content substring")
		cmd.Flags().StringVar(&docsSort, "sort", "date", "sort key (name, date, size, type)")
		cmd.Flags().StringVar(&docsOrder, "order", "desc", "sort order (asc, desc)")
		cmd.Flags().BoolVar(&docsIDs, "ids", false, "print ids only, one per line")
	}
	listFlags(docsCmd)
	listFlags(docsListCmd)

	docsAddCmd.Flags().StringVarP(&docsAddName, "name", "N", "", "document name")
	docsDeleteCmd.Flags().BoolVarP(&docsDeleteForce, "force", "f", false, "skip confirmation")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsAddCmd)
	docsCmd.AddCommand(docsUploadCmd)
	docsCmd.AddCommand(docsAddURLCmd)
	docsCmd.AddCommand(docsDeleteCmd)
}

func docsService() *docs.Service {
	return docs.NewService(docs.NewStore(), apiClient, logger)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc := docsService()
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	filter := docs.Filter{
		Search:    docsSearch,
		Type:      "all",
		SortBy:    docs.SortKey(docsSort),
		SortOrder: docs.SortOrder(docsOrder),
	}
	listing := filter.Apply(svc.Store().Documents())

	if docsIDs {
		for _, d := range listing {
			fmt.Println(d.ID)
		}
		return nil
	}

	if len(listing) == 0 {
		if docsSearch != "" {
			fmt.Println("No documents match the search.")
		} else {
			fmt.Println("No documents found.")
		}
		return nil
	}

	fmt.Printf("Documents (%d):\n\n", len(listing))
	width := terminalWidth()
	nameWidth := min(40, width/3)
	for _, d := range listing {
		name := runewidth.FillRight(runewidth.Truncate(d.Name, nameWidth, "…"), nameWidth)
		preview := runewidth.Truncate(docPreview(d.Content), width-nameWidth-6, "…")
		fmt.Printf("- %s  %s\n", name, preview)
		if verbose {
			fmt.Printf("  id: %s\n", d.ID)
		}
	}
	return nil
}

func runDocsAdd(cmd *cobra.Command, args []string) error {
	var content string
	if len(args) == 1 {
		content = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("document content is empty")
	}

	name := docsAddName
	if name == "" {
		name = "Untitled document"
	}

	doc, err := docsService().IngestText(context.Background(), name, content)
	if err != nil {
		return err
	}
	fmt.Printf("Added: %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	doc, err := docsService().UploadFile(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded: %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func runDocsAddURL(cmd *cobra.Command, args []string) error {
	link := args[0]
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return fmt.Errorf("invalid url: %s", link)
	}

	doc, err := docsService().IngestURL(context.Background(), "", link)
	if err != nil {
		return err
	}
	fmt.Printf("Registered: %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	if !docsDeleteForce {
		noun := "1 document"
		if len(args) > 1 {
			noun = fmt.Sprintf("%d documents", len(args))
		}
		fmt.Printf("About to delete %s.\n", noun)
		if !confirm() {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := docsService().DeleteSelected(context.Background(), args); err != nil {
		return err
	}
	fmt.Printf("Deleted %d documents.\n", len(args))
	return nil
}

func docPreview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	return strings.TrimSpace(content)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		return w
	}
	return 100
}
