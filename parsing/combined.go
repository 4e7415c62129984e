package parsing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bozorth3/minutia"
)

// ParseCombined reads xytPath's ".xyt" minutiae, normalizes each theta from
// the conventional [0, 360) range into (-180, 180], and — if a sibling file
// with the same name but a ".min" extension exists — overlays the kind
// (ridge ending vs. bifurcation) that file records for each minutia, in
// file order. Every minutia defaults to minutia.Type0 when no ".min"
// sidecar is present.
func ParseCombined(xytPath string) ([]minutia.Raw, error) {
	xytFile, err := os.Open(xytPath)
	if err != nil {
		return nil, err
	}
	defer xytFile.Close()

	raw, err := ParseXYT(xytFile)
	if err != nil {
		return nil, err
	}

	for i := range raw {
		if raw[i].Theta > 180 {
			raw[i].Theta -= 360
		}
	}

	minPath := withExtension(xytPath, ".min")
	if _, err := os.Stat(minPath); err == nil {
		minFile, err := os.Open(minPath)
		if err != nil {
			return nil, err
		}
		defer minFile.Close()

		kinds, err := ParseMIN(minFile)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(kinds) && i < len(raw); i++ {
			raw[i].Kind = kinds[i]
		}
	}

	return raw, nil
}

func withExtension(path, ext string) string {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + ext
}
