package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
)

type buildOptions struct {
	Inputs          inputOptions
	Output          string
	Catalog         string
	CatalogName     string
	MetricsTextfile string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a user constraint file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	addInputFlags(cmd, &opts.Inputs)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "SQLite catalog to store the document in")
	cmd.Flags().StringVar(&opts.CatalogName, "catalog-name", "", "Name of the document in the catalog")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write run metrics to this textfile")

	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("catalog_name", cmd.Flags().Lookup("catalog-name"))
	_ = viper.BindPFlag("metrics_textfile", cmd.Flags().Lookup("metrics-textfile"))
	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		AssembleRequest: opts.Inputs.request(cmd),
		OutputPath:      resolveString(cmd, opts.Output, "output", "output"),
		CatalogPath:     resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		CatalogName:     resolveString(cmd, opts.CatalogName, "catalog_name", "catalog-name"),
		MetricsTextfile: resolveString(cmd, opts.MetricsTextfile, "metrics_textfile", "metrics-textfile"),
	})
	if err != nil {
		return err
	}
	if result.OutputPath == "" || result.OutputPath == "-" {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote: %s (%d collections, %d warnings)\n", result.OutputPath, result.Collections, len(result.Report.Warnings))
	if result.Catalog != nil {
		fmt.Fprintf(out, "catalog: stored %s\n", result.Catalog.Name)
	}
	return nil
}
