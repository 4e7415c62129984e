package parsing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/minutia"
)

// isoMagic is the 4-byte format identifier every ISO/IEC 19794-2 finger
// minutiae record begins with.
var isoMagic = [4]byte{'F', 'M', 'R', 0}

// isoAngleStep converts an 8-bit ISO angle unit into degrees: 256 units
// span a full circle, so one unit is 360/256 degrees.
const isoAngleStep = 360.0 / 256.0

// ErrInvalidISOFormat is returned when the input is not a well-formed
// ISO/IEC 19794-2 finger minutiae record.
var ErrInvalidISOFormat = errors.New("parsing: invalid ISO/IEC 19794-2 record")

// ParseISO19794_2 decodes every minutia across every finger view in an
// ISO/IEC 19794-2 finger minutiae record: a 4-byte magic "FMR\0", a
// big-endian fixed header (total record length, capture equipment, image
// size/resolution, finger-view count), then one finger-view header (finger
// position, impression type, quality, minutia count) per view, each
// followed by that many 6-byte minutia records. A minutia record's x is a
// big-endian 16-bit word whose top two bits encode the minutia type (0b00
// other, 0b01 ridge ending, 0b10 ridge bifurcation; 0b11 is malformed); y is
// a big-endian 16-bit word whose top two bits are ignored; they are followed
// by a one-byte angle and a one-byte quality.
func ParseISO19794_2(r io.Reader) ([]minutia.Raw, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 24 || [4]byte(data[0:4]) != isoMagic {
		return nil, ErrInvalidISOFormat
	}
	if binary.BigEndian.Uint32(data[8:12]) != uint32(len(data)) {
		return nil, fmt.Errorf("%w: length field does not match record size", ErrInvalidISOFormat)
	}

	numFingerViews := int(data[22])
	rest := data[24:]

	var out []minutia.Raw
	for v := 0; v < numFingerViews; v++ {
		if len(rest) < 4 {
			return nil, fmt.Errorf("%w: truncated finger view header", ErrInvalidISOFormat)
		}
		numMinutiae := int(rest[3])
		rest = rest[4:]

		for m := 0; m < numMinutiae; m++ {
			if len(rest) < 6 {
				return nil, fmt.Errorf("%w: truncated minutia record", ErrInvalidISOFormat)
			}

			rawX := binary.BigEndian.Uint16(rest[0:2])
			rawY := binary.BigEndian.Uint16(rest[2:4])
			const typeMask = uint16(0b11 << 14)

			kindBits := (rawX & typeMask) >> 14
			var kind minutia.Kind
			switch kindBits {
			case 0b00, 0b01:
				kind = minutia.Type0
			case 0b10:
				kind = minutia.Type1
			default:
				return nil, fmt.Errorf("%w: unknown minutia type bits %02b", ErrInvalidISOFormat, kindBits)
			}

			x := int32(rawX &^ typeMask)
			y := int32(rawY &^ typeMask)
			theta := angle.Normalize(int32(float64(rest[4]) * isoAngleStep))
			quality := int32(rest[5])

			out = append(out, minutia.Raw{X: x, Y: y, Theta: theta, Quality: quality, Kind: kind})
			rest = rest[6:]
		}
	}

	return out, nil
}
