package adapters

import (
	"context"
	"strings"

	"github.com/koeng101/poly"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/shared"
)

// PlasmidLineWidth is the width sequence lines are wrapped to when a
// plasmid is read from FASTA.
const PlasmidLineWidth = 80

// PlasmidFileAdapter reads a plasmid either as plain lines or, when the
// first line is a FASTA description, as FASTA records.
type PlasmidFileAdapter struct {
	Text ports.TextSourcePort
}

func NewPlasmidFileAdapter(text ports.TextSourcePort) PlasmidFileAdapter {
	return PlasmidFileAdapter{Text: text}
}

var _ ports.PlasmidSourcePort = PlasmidFileAdapter{}

func (a PlasmidFileAdapter) ReadPlasmid(ctx context.Context, path string) ([]string, error) {
	lines, err := a.Text.ReadLines(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || !strings.HasPrefix(lines[0], ">") {
		return lines, nil
	}

	// The parser only closes a record on a following description or on a
	// non-empty final line, so comments and blanks must already be gone.
	fasta := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, ";") {
			fasta = append(fasta, line)
		}
	}
	records := fastaRecords(poly.ParseFASTA([]byte(strings.Join(fasta, "\n"))))
	if last := fasta[len(fasta)-1]; strings.HasPrefix(last, ">") {
		records = append(records, fastaRecord{name: last[1:]})
	}
	var out []string
	for _, record := range records {
		out = append(out, ">"+strings.TrimSpace(record.name))
		sequence := strings.ToUpper(strings.Join(strings.Fields(record.sequence), ""))
		if sequence == "" {
			continue
		}
		out = append(out, shared.WrapLines(sequence, PlasmidLineWidth)...)
	}
	log.Ctx(ctx).Debug().Str("file", path).Int("records", len(records)).Msg("fasta plasmid read")
	return out, nil
}

type fastaRecord struct {
	name     string
	sequence string
}

// fastaRecords splits a parsed FASTA back into its records. Each feature
// spans its record's slice of the concatenated sequence.
func fastaRecords(parsed poly.Sequence) []fastaRecord {
	records := make([]fastaRecord, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		location := feature.SequenceLocation
		records = append(records, fastaRecord{
			name:     feature.Description,
			sequence: parsed.Sequence[location.Start:location.End],
		})
	}
	return records
}
