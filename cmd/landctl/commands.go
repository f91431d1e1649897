package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samirrijal/isonwater/internal/adapters/landindex"
	"github.com/samirrijal/isonwater/internal/core/domain"
	"github.com/samirrijal/isonwater/internal/core/usecases"
	"github.com/samirrijal/isonwater/internal/pkg/config"
)

type options struct {
	dataset string
	strict  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "landctl",
		Short:        "Inspect land datasets and classify coordinates offline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("isonwater-landctl")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dataset") {
				opts.dataset = cfg.Dataset.Path
			}
			if !cmd.Flags().Changed("strict-latitude") {
				opts.strict = cfg.Validation.StrictLatitude
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "GeoJSON land dataset (.geojson or .gz)")
	root.PersistentFlags().BoolVar(&opts.strict, "strict-latitude", false, "restrict latitude to [-90, 90]")

	root.AddCommand(newStatsCmd(opts), newCheckCmd(opts), newFetchCmd(opts))
	return root
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the dataset and print index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			land, err := landindex.Load(opts.dataset)
			if err != nil {
				return err
			}
			return printJSON(cmd, land.Stats())
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	var lat, lon string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a single coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := domain.DefaultRule
			if opts.strict {
				rule = domain.StrictRule
			}
			coord, ok := rule.ParsePair(lat, lon)
			if !ok {
				return fmt.Errorf("invalid coordinate lat=%q lon=%q, expected %s", lat, lon, rule.RangeText())
			}

			land, err := landindex.Load(opts.dataset)
			if err != nil {
				return err
			}
			svc := usecases.NewClassifierService(land, nil)
			return printJSON(cmd, svc.Classify(context.Background(), coord))
		},
	}
	cmd.Flags().StringVar(&lat, "lat", "", "latitude")
	cmd.Flags().StringVar(&lon, "lon", "", "longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
