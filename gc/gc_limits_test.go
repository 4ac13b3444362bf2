package gc

import (
	"testing"

	"github.com/ishanroy/bhasha/objects"
	"github.com/stretchr/testify/assert"
)

// emptyRoot is a RootSource that holds nothing, for tests that only care
// about threshold/growth bookkeeping rather than actual reachability.
type emptyRoot struct{}

func (emptyRoot) Walk(func(objects.Value)) {}

func TestNewWithLimitsOverridesThresholdAndGrowth(t *testing.T) {
	g := NewWithLimits(4, 3.0)
	assert.Equal(t, 4, g.threshold)
	assert.Equal(t, 3.0, g.growth)
}

func TestNewWithLimitsFallsBackToDefaultsOnNonPositive(t *testing.T) {
	g := NewWithLimits(0, 0)
	assert.Equal(t, defaultThreshold, g.threshold)
	assert.Equal(t, defaultGrowth, g.growth)
}

func TestCollectKeepsThresholdAtLeastDefault(t *testing.T) {
	g := NewWithLimits(1, 3.0)
	g.Roots = []RootSource{emptyRoot{}}
	g.Collect()
	assert.GreaterOrEqual(t, g.threshold, defaultThreshold)
}
