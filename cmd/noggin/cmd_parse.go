package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"noggin/cmd/noggin/ui"
	"noggin/internal/grammar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse [sentence-file]",
	Short: "Parse a sentence and extract its noun phrase chunks",
	Long: `Parse an English sentence with a context-free grammar whose lexicon
comes from the Sherlock Holmes stories. Every distinct parse tree is
printed, followed by the lowest noun phrase chunks of each tree.

Reads the sentence from the given file, or prompts for one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	started := time.Now()

	sentence, err := sentenceFromArgsOrPrompt(args)
	if err != nil {
		return err
	}
	if sentence == "" {
		return nil
	}

	words := grammar.Preprocess(sentence)
	if len(words) == 0 {
		fmt.Println("No words to parse.")
		recordRun("parse", args, started, "empty sentence", nil)
		return nil
	}

	g := grammar.HolmesGrammar()
	trees, err := g.Parse(words)
	switch {
	case errors.Is(err, grammar.ErrUnknownWord):
		fmt.Printf("Error: %v.\n", err)
		recordRun("parse", args, started, "unknown word", nil)
		return nil
	case errors.Is(err, grammar.ErrNoParse):
		fmt.Println("Could not parse sentence.")
		recordRun("parse", args, started, "no parse", nil)
		return nil
	case err != nil:
		return err
	}

	for _, tree := range trees {
		fmt.Print(tree.Pretty())
		fmt.Println("Noun Phrase Chunks")
		for _, chunk := range grammar.NounPhraseChunks(tree) {
			fmt.Println(strings.Join(chunk.Words(), " "))
		}
	}

	logger.Debug("parse complete", zap.Int("words", len(words)), zap.Int("trees", len(trees)))
	recordRun("parse", args, started, fmt.Sprintf("%d parse(s) for %d words", len(trees), len(words)), nil)
	return nil
}

// sentenceFromArgsOrPrompt reads the sentence file when one was given,
// otherwise asks interactively. An empty return means the user cancelled.
func sentenceFromArgsOrPrompt(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read sentence file: %w", err)
		}
		return string(data), nil
	}

	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))
	p := tea.NewProgram(ui.NewPrompt(styles, "Sentence", "holmes sat in the red armchair"))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	prompt, ok := final.(ui.PromptModel)
	if !ok || prompt.Cancelled() {
		return "", nil
	}
	return prompt.Value(), nil
}
