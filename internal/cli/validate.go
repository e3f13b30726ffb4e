package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
	"github.com/tim-tx/cello-utils/internal/types"
)

type validateOptions struct {
	Inputs inputOptions
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Assemble and lint the inputs without writing a document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	addInputFlags(cmd, &opts.Inputs)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		AssembleRequest: opts.Inputs.request(cmd),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	name := result.Name
	if name == "" {
		name = "document"
	}
	fmt.Fprintf(out, "validated: %s (%d collections)\n", name, result.Collections)
	printReport(out, result.Report)
	return nil
}

func printReport(out io.Writer, report types.BuildReport) {
	for _, stage := range report.Stages {
		fmt.Fprintf(out, "- %s %s: %d rows, %d collections\n", stage.Stage, stage.File, stage.Rows, stage.Collections)
	}
	if len(report.Warnings) == 0 {
		return
	}
	fmt.Fprintf(out, "warnings: %d\n", len(report.Warnings))
	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "  %s\n", warning)
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
