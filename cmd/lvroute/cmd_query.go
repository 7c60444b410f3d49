package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newPathCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "path <start> <end>",
		Short: "Print the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			r, err := a.svc.Route(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(r)
			}
			if !r.Found() {
				printf(cmd, "No path found between %s and %s.\n", args[0], args[1])
				return nil
			}

			printf(cmd, "%s\n", r.Locations[0])
			for i, step := range r.StepCosts {
				printf(cmd, "  -> %s (%.2f)\n", r.Locations[i+1], step)
			}
			printf(cmd, "Total travel time: %.2f units.\n", r.Total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")

	return cmd
}

func newNearestCmd(flags *rootFlags) *cobra.Command {
	var (
		k      int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "nearest <from>",
		Short: "Print the closest destinations reachable from a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			if k == 0 {
				k = a.svc.NearestLimit()
			}
			ds, err := a.svc.Nearest(cmd.Context(), args[0], k)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(ds)
			}
			if len(ds) == 0 {
				printf(cmd, "There are no close destinations from %s.\n", args[0])
				return nil
			}
			for i, d := range ds {
				printf(cmd, "%2d. %s (%.2f)\n", i+1, d.Location, d.Cost)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of destinations (0 uses nearest_limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print destinations as JSON")

	return cmd
}

func newLocationsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location in the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			for _, l := range a.svc.Locations() {
				printf(cmd, "%s\n", l)
			}
			return nil
		},
	}
}
