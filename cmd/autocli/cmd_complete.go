package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/m-horky/autocli/internal/complete"
)

// completeCmd emits completion candidates for the shell
var completeCmd = &cobra.Command{
	Use:   "complete [tokens...]",
	Short: "Print completion candidates for a partial command line",
	Long: `Prints one candidate per line for the token under the cursor.
An empty last token means the cursor sits on a fresh word.

Meant to be wired into bash:

  complete -C "autocli complete" my-api

When bash invokes the completer, the tokens are recovered from the
COMP_LINE and COMP_POINT variables it exports; the positional
arguments bash adds describe only the word under the cursor. Without
the variables the arguments themselves are read as grammar tokens,
which is how to try completions by hand.`,
	Hidden:             true,
	DisableFlagParsing: true,
	RunE:               runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	// Under complete -C bash always passes three protocol words as
	// arguments: the command name, the word under the cursor and the
	// word before it. The grammar tokens live in COMP_LINE, so the
	// line wins whenever it is set; explicit arguments are grammar
	// tokens only when invoked by hand.
	tokens := tokensFromCompLine(os.Getenv("COMP_LINE"), os.Getenv("COMP_POINT"))
	if len(tokens) == 0 {
		tokens = args
	}

	index, err := loadIndex()
	if err != nil {
		// A broken contract must not break the user's shell.
		logger.Debug("completion unavailable", zap.Error(err))
		return nil
	}

	engine := complete.NewEngine(index, logger)
	for _, candidate := range engine.Complete(tokens) {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
	return nil
}

// tokensFromCompLine recovers grammar tokens from the command line bash
// hands to completion programs. The line is cut at the cursor and the
// program name dropped; a trailing space becomes the empty token that
// marks a fresh word.
func tokensFromCompLine(line, point string) []string {
	if line == "" {
		return nil
	}
	if n, err := strconv.Atoi(point); err == nil && n >= 0 && n < len(line) {
		line = line[:n]
	}
	fields := strings.Split(line, " ")
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
