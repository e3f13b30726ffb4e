package adapters

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
)

const maxLineBytes = 16 << 20

type TextFileAdapter struct{}

func NewTextFileAdapter() TextFileAdapter {
	return TextFileAdapter{}
}

var _ ports.TextSourcePort = TextFileAdapter{}

// ReadLines returns the non-blank lines of path with trailing whitespace
// removed.
func (a TextFileAdapter) ReadLines(ctx context.Context, path string) ([]string, error) {
	file, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("file", path).Int("lines", len(lines)).Msg("text read")
	return lines, nil
}
