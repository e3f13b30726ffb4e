package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tim-tx/cello-utils/internal/app"
	"github.com/tim-tx/cello-utils/internal/types"
)

// inputOptions are the assembly inputs shared by build and validate.
type inputOptions struct {
	Manifest           string
	Header             string
	Gates              string
	ResponseFunctions  string
	GateParts          string
	Parts              string
	Toxicity           string
	Cytometry          string
	MeasurementStd     string
	MeasurementPlasmid string
	LogicConstraints   string
	PartPlacementRules string
	GatePlacementRules string
	MotifLibrary       string
	StdMotifLibrary    bool
	Strict             bool
}

func addInputFlags(cmd *cobra.Command, opts *inputOptions) {
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Build manifest naming every input")
	cmd.Flags().StringVarP(&opts.Header, "header", "e", "", "Header key/value table")
	cmd.Flags().StringVarP(&opts.Gates, "gates", "a", "", "Gates table")
	cmd.Flags().StringVarP(&opts.ResponseFunctions, "response-functions", "f", "", "Response functions table")
	cmd.Flags().StringVarP(&opts.GateParts, "gate-parts", "g", "", "Gate parts table")
	cmd.Flags().StringVarP(&opts.Parts, "parts", "p", "", "Parts table")
	cmd.Flags().StringVarP(&opts.Toxicity, "toxicity", "t", "", "Gate toxicity table")
	cmd.Flags().StringVarP(&opts.Cytometry, "cytometry", "c", "", "Gate cytometry table")
	cmd.Flags().StringVarP(&opts.MeasurementStd, "measurement-std", "s", "", "Measurement standard key/value table")
	cmd.Flags().StringVarP(&opts.MeasurementPlasmid, "measurement-plasmid", "q", "", "Measurement standard plasmid sequence (text or FASTA)")
	cmd.Flags().StringVarP(&opts.LogicConstraints, "logic-constraints", "l", "", "Logic constraints table")
	cmd.Flags().StringVarP(&opts.PartPlacementRules, "placement-rules", "r", "", "Part placement rules")
	cmd.Flags().StringVar(&opts.GatePlacementRules, "gate-placement-rules", "", "Gate placement rules")
	cmd.Flags().StringVarP(&opts.MotifLibrary, "motif-library", "m", "", "Motif library file")
	cmd.Flags().BoolVar(&opts.StdMotifLibrary, "std-motif-library", false, "Use the standard motif library")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat every duplicate as an error")
	cmd.MarkFlagsMutuallyExclusive("motif-library", "std-motif-library")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("header", cmd.Flags().Lookup("header"))
	_ = viper.BindPFlag("gates", cmd.Flags().Lookup("gates"))
	_ = viper.BindPFlag("response_functions", cmd.Flags().Lookup("response-functions"))
	_ = viper.BindPFlag("gate_parts", cmd.Flags().Lookup("gate-parts"))
	_ = viper.BindPFlag("parts", cmd.Flags().Lookup("parts"))
	_ = viper.BindPFlag("toxicity", cmd.Flags().Lookup("toxicity"))
	_ = viper.BindPFlag("cytometry", cmd.Flags().Lookup("cytometry"))
	_ = viper.BindPFlag("measurement_std", cmd.Flags().Lookup("measurement-std"))
	_ = viper.BindPFlag("measurement_plasmid", cmd.Flags().Lookup("measurement-plasmid"))
	_ = viper.BindPFlag("logic_constraints", cmd.Flags().Lookup("logic-constraints"))
	_ = viper.BindPFlag("part_placement_rules", cmd.Flags().Lookup("placement-rules"))
	_ = viper.BindPFlag("gate_placement_rules", cmd.Flags().Lookup("gate-placement-rules"))
	_ = viper.BindPFlag("motif_library", cmd.Flags().Lookup("motif-library"))
	_ = viper.BindPFlag("std_motif_library", cmd.Flags().Lookup("std-motif-library"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
}

func (o inputOptions) request(cmd *cobra.Command) app.AssembleRequest {
	return app.AssembleRequest{
		ManifestPath: resolveString(cmd, o.Manifest, "manifest", "manifest"),
		Inputs: types.Inputs{
			Header:             resolveString(cmd, o.Header, "header", "header"),
			Gates:              resolveString(cmd, o.Gates, "gates", "gates"),
			ResponseFunctions:  resolveString(cmd, o.ResponseFunctions, "response_functions", "response-functions"),
			GateParts:          resolveString(cmd, o.GateParts, "gate_parts", "gate-parts"),
			Parts:              resolveString(cmd, o.Parts, "parts", "parts"),
			Toxicity:           resolveString(cmd, o.Toxicity, "toxicity", "toxicity"),
			Cytometry:          resolveString(cmd, o.Cytometry, "cytometry", "cytometry"),
			MeasurementStd:     resolveString(cmd, o.MeasurementStd, "measurement_std", "measurement-std"),
			MeasurementPlasmid: resolveString(cmd, o.MeasurementPlasmid, "measurement_plasmid", "measurement-plasmid"),
			LogicConstraints:   resolveString(cmd, o.LogicConstraints, "logic_constraints", "logic-constraints"),
			PartPlacementRules: resolveString(cmd, o.PartPlacementRules, "part_placement_rules", "placement-rules"),
			GatePlacementRules: resolveString(cmd, o.GatePlacementRules, "gate_placement_rules", "gate-placement-rules"),
			MotifLibrary:       resolveString(cmd, o.MotifLibrary, "motif_library", "motif-library"),
			StdMotifLibrary:    resolveBool(cmd, o.StdMotifLibrary, "std_motif_library", "std-motif-library"),
		},
		Strict: resolveBool(cmd, o.Strict, "strict", "strict"),
	}
}
