package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
)

type catalogOptions struct {
	DB   string
	Name string
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse documents stored by build --catalog",
	}
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "SQLite catalog path")
	_ = viper.BindPFlag("catalog", cmd.PersistentFlags().Lookup("db"))

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalogList(cmd.Context(), cmd, opts)
		},
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "Print a stored document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalogShow(cmd.Context(), cmd, opts)
		},
	}
	show.Flags().StringVar(&opts.Name, "name", "", "Document name")

	cmd.AddCommand(list)
	cmd.AddCommand(show)
	return cmd
}

func runCatalogList(ctx context.Context, cmd *cobra.Command, opts catalogOptions) error {
	service := newAppService()
	result, err := service.CatalogList(ctx, app.CatalogListRequest{
		DBPath: resolveString(cmd, opts.DB, "catalog", "db"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, document := range result.Documents {
		fmt.Fprintf(out, "%s\t%s\t%d collections\n", document.Name, document.CreatedAt.Format(time.RFC3339), document.Collections)
	}
	return nil
}

func runCatalogShow(ctx context.Context, cmd *cobra.Command, opts catalogOptions) error {
	service := newAppService()
	result, err := service.CatalogShow(ctx, app.CatalogShowRequest{
		DBPath: resolveString(cmd, opts.DB, "catalog", "db"),
		Name:   opts.Name,
	})
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(result.Entries))
	for _, entry := range result.Entries {
		records = append(records, entry.Record)
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(records)
}
