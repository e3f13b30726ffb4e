package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
)

type inspectOptions struct {
	Document string
	Gate     string
	Dump     bool
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a user constraint file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Document, "ucf", "", "User constraint file")
	cmd.Flags().StringVar(&opts.Gate, "gate", "", "Show details for one gate")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Dump the selected records")
	_ = viper.BindPFlag("ucf", cmd.Flags().Lookup("ucf"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		DocumentPath: resolveString(cmd, opts.Document, "ucf", "ucf"),
		Gate:         opts.Gate,
		Dump:         opts.Dump,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "collections: %d\n", result.Collections)
	for _, kind := range result.Kinds {
		fmt.Fprintf(out, "- %s: %d\n", kind.Kind, kind.Count)
	}
	if gate := result.Gate; gate != nil {
		fmt.Fprintf(out, "gate %s (%s)\n", gate.Name, gate.GateType)
		if gate.Equation != "" {
			fmt.Fprintf(out, "  equation: %s\n", gate.Equation)
		}
		for _, name := range slices.Sorted(maps.Keys(gate.Parameters)) {
			fmt.Fprintf(out, "  %s = %g\n", name, gate.Parameters[name])
		}
		if gate.Promoter != "" {
			fmt.Fprintf(out, "  promoter: %s\n", gate.Promoter)
		}
		for _, variable := range slices.Sorted(maps.Keys(gate.Cassettes)) {
			fmt.Fprintf(out, "  cassette %s: %s\n", variable, strings.Join(gate.Cassettes[variable], ", "))
		}
		for _, variable := range slices.Sorted(maps.Keys(gate.CytometryInputs)) {
			fmt.Fprintf(out, "  cytometry %s inputs: %v\n", variable, gate.CytometryInputs[variable])
		}
		if len(gate.ToxicityVariables) > 0 {
			fmt.Fprintf(out, "  toxicity: %s\n", strings.Join(gate.ToxicityVariables, ", "))
		}
	}
	if result.Dump != "" {
		fmt.Fprint(out, result.Dump)
	}
	return nil
}
