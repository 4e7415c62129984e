package parsing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/bozorth3/minutia"
)

// minHeaderLines is how many leading lines of a ".min" file are metadata,
// not minutia records.
const minHeaderLines = 4

// ParseMIN reads a ".min" sidecar file: four header lines, then one
// colon-delimited record per minutia whose fifth column is "RIG" (ridge
// ending, minutia.Type0) or "BIF" (bifurcation, minutia.Type1).
func ParseMIN(r io.Reader) ([]minutia.Kind, error) {
	var out []minutia.Kind

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= minHeaderLines {
			continue
		}

		columns := strings.Split(scanner.Text(), ":")
		if len(columns) < 5 {
			return nil, fmt.Errorf("parsing: min line %d: expected at least 5 columns, got %d", lineNo, len(columns))
		}

		switch strings.TrimSpace(columns[4]) {
		case "RIG":
			out = append(out, minutia.Type0)
		case "BIF":
			out = append(out, minutia.Type1)
		default:
			return nil, fmt.Errorf("parsing: min line %d: unknown minutia kind %q", lineNo, columns[4])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
