package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showParams bool

// pathsCmd lists what the contract declares
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the paths and methods the contract declares",
	RunE:  listPaths,
}

func listPaths(cmd *cobra.Command, args []string) error {
	index, err := loadIndex()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range index.Paths() {
		for _, method := range index.Methods(path) {
			fmt.Fprintf(out, "%-6s %s\n", strings.ToUpper(method), path)
			if !showParams {
				continue
			}
			for _, param := range index.Parameters(path, method) {
				required := "optional"
				if param.Required {
					required = "required"
				}
				fmt.Fprintf(out, "       %s %s (%s)\n", param.In, param.Name, required)
			}
		}
	}
	return nil
}
