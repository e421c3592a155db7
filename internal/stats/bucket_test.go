package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadBucketPickEm(t *testing.T) {
	label, ok := SpreadBuckets.Assign(0)
	require.True(t, ok)
	assert.Equal(t, "Pick-em (±0-1)", label)

	label, ok = SpreadBuckets.Assign(1.4)
	require.True(t, ok)
	assert.Equal(t, "Pick-em (±0-1)", label)

	label, ok = SpreadBuckets.Assign(1.6)
	require.True(t, ok)
	assert.Equal(t, "Field Goal (1.5-3)", label)
}

func TestBucketBoundariesHalfOpen(t *testing.T) {
	// Half-point cutoffs keep integer lines away from edges, but the edge
	// itself belongs to the upper bucket.
	label, ok := SpreadBuckets.Assign(3.5)
	require.True(t, ok)
	assert.Equal(t, "Medium (3.5-6)", label)

	label, ok = SpreadBuckets.Assign(13)
	require.True(t, ok)
	assert.Equal(t, "Double Digits (9.5+)", label)
}

func TestBucketOutOfRange(t *testing.T) {
	_, ok := SpreadBuckets.Assign(-1)
	assert.False(t, ok)
}

func TestMarginBucketsTieCategory(t *testing.T) {
	label, ok := MarginBuckets.Assign(0)
	require.True(t, ok)
	assert.Equal(t, "Tie", label)

	label, ok = MarginBuckets.Assign(17)
	require.True(t, ok)
	assert.Equal(t, "Blowout (17+)", label)
}

func TestBucketLabelsOrder(t *testing.T) {
	labels := TotalBuckets.Labels()
	require.Len(t, labels, 4)
	assert.Equal(t, "Low (under 37.5)", labels[0])
	assert.Equal(t, "Shootout (50.5+)", labels[3])
}
