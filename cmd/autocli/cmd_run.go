package main

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/m-horky/autocli/internal/contract"
	"github.com/m-horky/autocli/internal/grammar"
	"github.com/m-horky/autocli/internal/verify"
)

// runCmd interprets grammar tokens as a request description
var runCmd = &cobra.Command{
	Use:   "run [tokens...]",
	Short: "Parse and validate a request described by grammar tokens",
	Long: `Interprets the ordered tokens as an HTTP request description,
validates it against the contract and prints the request plan.

Tokens build the path until the first flag; path variables are written
as name=value. After that the flags take over:

  -X method      -H key value      -Q key value      -D payload

Example:
  autocli run dns domain=example.org a -X POST -H Authorization secret -Q name www -D @record.json`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE:               runRequest,
}

// runRequest parses, verifies and prints the drafted request
func runRequest(cmd *cobra.Command, args []string) error {
	index, err := loadIndex()
	if err != nil {
		return err
	}

	draft, err := grammar.NewParser(logger).Parse(args)
	if err != nil {
		return err
	}

	if err := verify.NewVerifier(index, logger).Verify(draft); err != nil {
		return err
	}

	logger.Info("request validated",
		zap.String("method", draft.Method),
		zap.String("path", draft.Path))

	printPlan(cmd, draft)
	return nil
}

// printPlan renders the validated request in a curl-like shape.
func printPlan(cmd *cobra.Command, draft *grammar.Draft) {
	out := cmd.OutOrStdout()

	target := strings.TrimSuffix(cfg.Request.BaseURL, "/") + resolvePath(draft)
	if query := encodeQuery(draft); query != "" {
		target += "?" + query
	}
	fmt.Fprintf(out, "%s %s\n", strings.ToUpper(draft.Method), target)

	headers := make([]string, 0, len(draft.Headers))
	for key := range draft.Headers {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	for _, key := range headers {
		fmt.Fprintf(out, "%s: %s\n", key, draft.Headers[key])
	}

	if draft.Data != "" {
		fmt.Fprintf(out, "\n%s\n", draft.Data)
	}
}

// resolvePath substitutes the captured variables back into the drafted
// path.
func resolvePath(draft *grammar.Draft) string {
	segments := contract.SplitSegments(draft.Path)
	resolved := make([]string, len(segments))
	for i, segment := range segments {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			resolved[i] = url.PathEscape(draft.PathVariables[segment[1:len(segment)-1]])
			continue
		}
		resolved[i] = segment
	}
	return "/" + strings.Join(resolved, "/")
}

func encodeQuery(draft *grammar.Draft) string {
	values := url.Values{}
	for key, value := range draft.Queries {
		values.Set(key, value)
	}
	return values.Encode()
}
