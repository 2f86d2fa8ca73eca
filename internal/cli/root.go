// Package cli provides the haversine command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"haversine/internal/distance"
)

// version is set at build time via -ldflags.
var version = "dev"

// distanceService backs every command; replaced through SetService.
var distanceService = distance.NewDistanceService(slog.Default())

var rootCmd = &cobra.Command{
	Use:   "haversine",
	Short: "Great-circle distance between two coordinates",
	Long: `haversine computes the great-circle distance between two points given as
"latitude,longitude" strings, using the haversine formula on a spherical earth.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetService replaces the distance service used by the commands.
func SetService(svc distance.Service) {
	distanceService = svc
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
