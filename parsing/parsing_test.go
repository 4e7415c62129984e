package parsing_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/katalvlaran/bozorth3/parsing"
	"github.com/stretchr/testify/require"
)

func TestParseXYT_ParsesFieldsAndDefaultsQuality(t *testing.T) {
	input := "10 20 30\n40 50 -60 77\n\n"
	raw, err := parsing.ParseXYT(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, raw, 2)
	require.Equal(t, minutia.Raw{X: 10, Y: 20, Theta: 30, Quality: 0}, raw[0])
	require.Equal(t, minutia.Raw{X: 40, Y: 50, Theta: -60, Quality: 77}, raw[1])
}

func TestParseXYT_RejectsShortLines(t *testing.T) {
	_, err := parsing.ParseXYT(strings.NewReader("10 20\n"))
	require.Error(t, err)
}

func TestParseMIN_SkipsHeaderAndMapsKind(t *testing.T) {
	input := "h1\nh2\nh3\nh4\na:b:c:d:RIG\na:b:c:d:BIF\n"
	kinds, err := parsing.ParseMIN(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []minutia.Kind{minutia.Type0, minutia.Type1}, kinds)
}

func TestParseMIN_RejectsUnknownKind(t *testing.T) {
	input := "h1\nh2\nh3\nh4\na:b:c:d:XXX\n"
	_, err := parsing.ParseMIN(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseCombined_NormalizesThetaAndOverlaysKind(t *testing.T) {
	dir := t.TempDir()
	xytPath := filepath.Join(dir, "print.xyt")
	minPath := filepath.Join(dir, "print.min")

	require.NoError(t, os.WriteFile(xytPath, []byte("10 20 270\n40 50 90\n"), 0o644))
	require.NoError(t, os.WriteFile(minPath, []byte("h1\nh2\nh3\nh4\na:b:c:d:BIF\na:b:c:d:RIG\n"), 0o644))

	raw, err := parsing.ParseCombined(xytPath)
	require.NoError(t, err)
	require.Len(t, raw, 2)
	require.Equal(t, int32(-90), raw[0].Theta)
	require.Equal(t, int32(90), raw[1].Theta)
	require.Equal(t, minutia.Type1, raw[0].Kind)
	require.Equal(t, minutia.Type0, raw[1].Kind)
}

func TestParseCombined_DefaultsKindWithoutSidecar(t *testing.T) {
	dir := t.TempDir()
	xytPath := filepath.Join(dir, "print.xyt")
	require.NoError(t, os.WriteFile(xytPath, []byte("10 20 30\n"), 0o644))

	raw, err := parsing.ParseCombined(xytPath)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	require.Equal(t, minutia.Type0, raw[0].Kind)
}

func buildISORecord(t *testing.T, minutiae [][6]byte) []byte {
	t.Helper()

	var views bytes.Buffer
	views.WriteByte(1) // finger_position
	views.WriteByte(0) // impr_type
	views.WriteByte(64) // finger_quality
	views.WriteByte(byte(len(minutiae)))
	for _, m := range minutiae {
		views.Write(m[:])
	}

	var buf bytes.Buffer
	buf.WriteString("FMR")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 0, 0}) // bytes 4..8, unused by the parser
	length := uint32(24 + views.Len())
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], length)
	buf.Write(lenBuf[:])
	buf.Write(make([]byte, 10)) // capture equipment + x/y size + x/y resolution
	buf.WriteByte(1)            // one finger view
	buf.WriteByte(0)            // reserved
	buf.Write(views.Bytes())

	require.Equal(t, int(length), buf.Len())
	return buf.Bytes()
}

func minutiaRecord(x, y uint16, kindBits uint16, angleUnit, quality byte) [6]byte {
	var rec [6]byte
	packedX := (x &^ (0b11 << 14)) | (kindBits << 14)
	binary.BigEndian.PutUint16(rec[0:2], packedX)
	binary.BigEndian.PutUint16(rec[2:4], y)
	rec[4] = angleUnit
	rec[5] = quality
	return rec
}

func TestParseISO19794_2_DecodesMinutiaeAcrossTypes(t *testing.T) {
	data := buildISORecord(t, [][6]byte{
		minutiaRecord(100, 200, 0b00, 0, 50),
		minutiaRecord(150, 250, 0b01, 64, 60),
		minutiaRecord(300, 400, 0b10, 128, 70),
	})

	raw, err := parsing.ParseISO19794_2(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, raw, 3)

	require.Equal(t, int32(100), raw[0].X)
	require.Equal(t, int32(200), raw[0].Y)
	require.Equal(t, minutia.Type0, raw[0].Kind)

	require.Equal(t, minutia.Type0, raw[1].Kind)

	require.Equal(t, minutia.Type1, raw[2].Kind)
	require.Equal(t, int32(180), raw[2].Theta)
}

func TestParseISO19794_2_RejectsBadMagic(t *testing.T) {
	data := buildISORecord(t, nil)
	data[0] = 'X'
	_, err := parsing.ParseISO19794_2(bytes.NewReader(data))
	require.ErrorIs(t, err, parsing.ErrInvalidISOFormat)
}

func TestParseISO19794_2_RejectsLengthMismatch(t *testing.T) {
	data := buildISORecord(t, nil)
	data = append(data, 0, 0, 0) // corrupt the declared length
	_, err := parsing.ParseISO19794_2(bytes.NewReader(data))
	require.Error(t, err)
}

func TestParseISO19794_2_RejectsReservedMinutiaType(t *testing.T) {
	data := buildISORecord(t, [][6]byte{minutiaRecord(1, 1, 0b11, 0, 0)})
	_, err := parsing.ParseISO19794_2(bytes.NewReader(data))
	require.ErrorIs(t, err, parsing.ErrInvalidISOFormat)
}
