package parsing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bozorth3/minutia"
)

// ParseXYT reads one minutia per line as whitespace-separated integers
// "x y theta [quality]"; a missing quality column defaults to 0.
func ParseXYT(r io.Reader) ([]minutia.Raw, error) {
	var out []minutia.Raw

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("parsing: xyt line %d: expected at least 3 fields, got %d", lineNo, len(fields))
		}

		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parsing: xyt line %d: %w", lineNo, err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parsing: xyt line %d: %w", lineNo, err)
		}
		theta, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parsing: xyt line %d: %w", lineNo, err)
		}

		quality := 0
		if len(fields) >= 4 {
			quality, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("parsing: xyt line %d: %w", lineNo, err)
			}
		}

		out = append(out, minutia.Raw{X: int32(x), Y: int32(y), Theta: int32(theta), Quality: int32(quality)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
