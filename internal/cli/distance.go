package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"haversine/internal/types"
)

// distanceJSON is a flag for the distance command.
var distanceJSON bool

var distanceCmd = &cobra.Command{
	Use:   "distance [point-a] [point-b]",
	Short: "Compute the distance between two points",
	Long: `Compute the great-circle distance between two "latitude,longitude" points.

Example:
  haversine distance 51.5074,-0.1278 40.7128,-74.0060`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

type distanceOutput struct {
	Distance   string       `json:"distance"`
	Kilometers float64      `json:"kilometers"`
	Meters     float64      `json:"meters"`
	PointA     types.Coords `json:"pointA"`
	PointB     types.Coords `json:"pointB"`
}

func init() {
	distanceCmd.Flags().BoolVar(&distanceJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(distanceCmd)
}

func runDistance(cmd *cobra.Command, args []string) error {
	res, err := distanceService.Evaluate(args[0], args[1])
	if err != nil {
		return err
	}

	if distanceJSON {
		return printJSON(cmd, distanceOutput{
			Distance:   res.Distance.String(),
			Kilometers: res.Distance.Kilometers(),
			Meters:     res.Distance.Meters,
			PointA:     res.PointA,
			PointB:     res.PointB,
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Distance.String())
	return err
}
