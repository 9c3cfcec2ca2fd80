package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"noggin/cmd/noggin/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain how one of the solvers works",
	Long: `Render the built-in explainer for a topic as styled markdown.
Without a topic, the available topics are listed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"pagerank", "tictactoe", "minesweeper", "crossword", "parse"},
	RunE:      runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	started := time.Now()

	if len(args) == 0 {
		fmt.Println("Available topics:")
		for _, topic := range explainTopics() {
			fmt.Printf("  %s\n", topic)
		}
		fmt.Println("\nUsage: noggin explain <topic>")
		return nil
	}

	topic := strings.ToLower(args[0])
	raw, err := docsFS.ReadFile("docs/" + topic + ".md")
	if err != nil {
		return fmt.Errorf("unknown topic %q (want one of: %s)", topic, strings.Join(explainTopics(), ", "))
	}

	fmt.Print(renderMarkdown(string(raw)))
	recordRun("explain", args, started, "explained "+topic, nil)
	return nil
}

func explainTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// renderMarkdown styles the document for the terminal, falling back to the
// raw text when the renderer cannot be built.
func renderMarkdown(raw string) string {
	theme := ui.ThemeFromName(cfg.UI.Theme)

	var renderer *glamour.TermRenderer
	var err error
	if theme.IsDark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}
	if err != nil {
		return raw
	}

	out, err := renderer.Render(raw)
	if err != nil {
		return raw
	}
	return out
}
