package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

// readStdin читает весь stdin команды для аргумента "-".
func readStdin(cmd *cobra.Command) ([]byte, error) {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return src, nil
}
