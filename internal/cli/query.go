package cli

import (
	"context"
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
)

type queryOptions struct {
	Document string
	Path     string
}

func newQueryCommand() *cobra.Command {
	opts := queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Evaluate a JSONPath expression against a user constraint file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Document, "ucf", "", "User constraint file")
	cmd.Flags().StringVar(&opts.Path, "path", "", "JSONPath expression, e.g. $[?(@.collection == 'gates')].gate_name")
	_ = viper.BindPFlag("ucf", cmd.Flags().Lookup("ucf"))
	return cmd
}

func runQuery(ctx context.Context, cmd *cobra.Command, opts queryOptions) error {
	service := newAppService()
	result, err := service.Query(ctx, app.QueryRequest{
		DocumentPath: resolveString(cmd, opts.Document, "ucf", "ucf"),
		Path:         opts.Path,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(result.Matches, &ojg.Options{Indent: 4, Sort: true}))
	return nil
}
