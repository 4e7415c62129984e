package bozorth_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/angle"
	"github.com/katalvlaran/bozorth3/bozorth"
	"github.com/katalvlaran/bozorth3/minutia"
	"github.com/stretchr/testify/require"
)

func gridMinutiae(offsetTheta int32) []minutia.Minutia {
	var ms []minutia.Minutia
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			ms = append(ms, minutia.Minutia{
				X:     int32(i * 20),
				Y:     int32(j * 20),
				Theta: angle.Normalize(int32((i+j)*17) + offsetTheta),
			})
		}
	}
	return ms
}

func constantScore(pk, pj, gk, gj minutia.Minutia) uint32 { return 1 }

func TestMatchScore_TooFewMinutiae(t *testing.T) {
	cfg := bozorth.NewConfig().Snapshot()
	st := bozorth.NewState()

	_, _, err := bozorth.MatchScore(nil, gridMinutiae(0), minutia.NistInternal, constantScore, cfg, st)
	require.ErrorIs(t, err, bozorth.ErrTooFewMinutiae)
}

func TestMatchScore_IdenticalPrintScoresHigherThanUnrelatedPrint(t *testing.T) {
	cfg := bozorth.NewConfig().Snapshot()
	st := bozorth.NewState()

	probe := gridMinutiae(0)
	identicalScore, _, err := bozorth.MatchScore(probe, probe, minutia.NistInternal, constantScore, cfg, st)
	require.NoError(t, err)
	require.Greater(t, identicalScore, uint32(0), "matching a print against itself should find at least one cluster")

	rotated := gridMinutiae(97) // same geometry, incompatible orientations throughout
	unrelatedScore, _, err := bozorth.MatchScore(probe, rotated, minutia.NistInternal, constantScore, cfg, st)
	require.NoError(t, err)
	require.LessOrEqual(t, unrelatedScore, identicalScore)
}

func TestMatchScore_ReusesStateAcrossCalls(t *testing.T) {
	cfg := bozorth.NewConfig().Snapshot()
	st := bozorth.NewState()
	probe := gridMinutiae(0)

	first, _, err := bozorth.MatchScore(probe, probe, minutia.NistInternal, constantScore, cfg, st)
	require.NoError(t, err)

	second, _, err := bozorth.MatchScore(probe, probe, minutia.NistInternal, constantScore, cfg, st)
	require.NoError(t, err)
	require.Equal(t, first, second, "reusing State must not leak data between comparisons")
}
