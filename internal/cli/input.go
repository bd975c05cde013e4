package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput returns the contents of the file named by args, or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, args[0], nil
}
