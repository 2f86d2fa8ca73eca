package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"haversine/internal/coordinates"
)

// validateJSON is a flag for the validate command.
var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [point]",
	Short: "Check a single coordinate string",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the parsed point as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	coords, err := coordinates.Validate(args[0])
	if err != nil {
		return err
	}

	if validateJSON {
		return printJSON(cmd, coords)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "latitude:  %v\nlongitude: %v\n", coords.Latitude, coords.Longitude)
	return err
}
