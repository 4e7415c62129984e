package cluster_test

import (
	"testing"

	"github.com/katalvlaran/bozorth3/cluster"
	"github.com/stretchr/testify/require"
)

func TestOverlap_DetectsSharedProbeEndpoint(t *testing.T) {
	var a, b cluster.Endpoints
	a.Probe[0] = 1 << 5
	b.Probe[0] = 1 << 5
	require.True(t, cluster.Overlap(a, b))
}

func TestOverlap_DetectsSharedGalleryEndpoint(t *testing.T) {
	var a, b cluster.Endpoints
	a.Gallery[1] = 1 << 3
	b.Gallery[1] = 1 << 3
	require.True(t, cluster.Overlap(a, b))
}

func TestOverlap_DisjointIsFalse(t *testing.T) {
	var a, b cluster.Endpoints
	a.Probe[0] = 1 << 5
	b.Probe[0] = 1 << 6
	a.Gallery[2] = 1 << 10
	b.Gallery[2] = 1 << 11
	require.False(t, cluster.Overlap(a, b))
}
