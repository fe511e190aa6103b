package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

func TestFreshValueExclusionLogicHasAllCandidates(t *testing.T) {
	logic := NewValueExclusionLogic()
	for _, addr := range grid.AllCellAddresses() {
		assert.Equal(t, 9, logic.ApplicableValueCount(addr))
		for value := 1; value <= 9; value++ {
			assert.True(t, logic.IsApplicable(UnambiguousCandidate{CellAddress: addr, Value: value}))
		}
	}
}

func TestApplyAndExcludeUpdatesPeersOnly(t *testing.T) {
	logic := NewValueExclusionLogic()
	discoveries := logic.ApplyAndExclude(grid.At(0, 0), 5)
	assert.Empty(t, discoveries)

	// the applied cell is fixed now, no candidates remain for it
	assert.Equal(t, 0, logic.ApplicableValueCount(grid.At(0, 0)))

	for _, peer := range grid.PeerAddresses(grid.At(0, 0)) {
		assert.Equal(t, 8, logic.ApplicableValueCount(peer))
		assert.False(t, logic.IsApplicable(UnambiguousCandidate{CellAddress: peer, Value: 5}))
		assert.True(t, logic.IsApplicable(UnambiguousCandidate{CellAddress: peer, Value: 6}))
	}

	// cells unrelated to [0, 0] are untouched
	assert.Equal(t, 9, logic.ApplicableValueCount(grid.At(5, 5)))
}

func TestApplyAndExcludeDetectsNakedSingle(t *testing.T) {
	logic := NewValueExclusionLogic()
	// exclude the values 1-7 for the cell [0, 0] via its row
	for value := 1; value <= 7; value++ {
		discoveries := logic.ApplyAndExclude(grid.At(0, value), value)
		assert.Empty(t, discoveries)
	}
	// excluding 8 via the column leaves [0, 0] with the single value 9
	discoveries := logic.ApplyAndExclude(grid.At(8, 0), 8)
	require.Len(t, discoveries, 1)
	assert.Same(t, grid.At(0, 0), discoveries[0].CellAddress)
	assert.Equal(t, 9, discoveries[0].Value)
}

func TestUndefinedCellCandidatesFirstUndefinedCell(t *testing.T) {
	logic := NewValueExclusionLogic()
	logic.ApplyAndExclude(grid.At(0, 0), 1)
	logic.ApplyAndExclude(grid.At(0, 1), 2)

	candidates := logic.UndefinedCellCandidates(FirstUndefinedCell)
	require.NotNil(t, candidates)
	assert.Same(t, grid.At(0, 2), candidates.CellAddress)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, candidates.Values)
}

func TestUndefinedCellCandidatesLeastCandidates(t *testing.T) {
	logic := NewValueExclusionLogic()
	// [8, 8] loses 3 candidates, every other affected cell at most 3
	logic.ApplyAndExclude(grid.At(8, 0), 1)
	logic.ApplyAndExclude(grid.At(8, 1), 2)
	logic.ApplyAndExclude(grid.At(0, 8), 3)

	candidates := logic.UndefinedCellCandidates(UndefinedCellWithLeastCandidates)
	require.NotNil(t, candidates)
	assert.Same(t, grid.At(8, 8), candidates.CellAddress)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, candidates.Values)
}

func TestUndefinedCellCandidatesLeastCandidatesBreaksTiesByCanonicalOrder(t *testing.T) {
	logic := NewValueExclusionLogic()
	logic.ApplyAndExclude(grid.At(4, 4), 5)

	// all 20 peers of [4, 4] now have 8 candidates, the first one in
	// row-major order wins
	candidates := logic.UndefinedCellCandidates(UndefinedCellWithLeastCandidates)
	require.NotNil(t, candidates)
	assert.Same(t, grid.At(0, 4), candidates.CellAddress)
	assert.Len(t, candidates.Values, 8)
}

func TestIsApplicableReflectsLaterExclusions(t *testing.T) {
	logic := NewValueExclusionLogic()
	candidate := UnambiguousCandidate{CellAddress: grid.At(3, 3), Value: 4}
	require.True(t, logic.IsApplicable(candidate))

	logic.ApplyAndExclude(grid.At(3, 8), 4)
	assert.False(t, logic.IsApplicable(candidate))
}

func TestValueExclusionCopyIsIndependent(t *testing.T) {
	original := NewValueExclusionLogic()
	original.ApplyAndExclude(grid.At(0, 0), 1)
	clone := original.Copy()

	clone.ApplyAndExclude(grid.At(4, 4), 5)
	assert.Equal(t, 9, original.ApplicableValueCount(grid.At(4, 5)))
	assert.Equal(t, 8, clone.ApplicableValueCount(grid.At(4, 5)))

	original.ApplyAndExclude(grid.At(8, 8), 9)
	assert.Equal(t, 8, original.ApplicableValueCount(grid.At(8, 0)))
	// the clone saw the exclusion of 1 via [0, 0] only
	assert.Equal(t, 8, clone.ApplicableValueCount(grid.At(8, 0)))
}

// TestExclusionMatchesNaiveRecomputation cross-checks the incrementally
// maintained masks against a from-scratch recomputation over the whole
// board.
func TestExclusionMatchesNaiveRecomputation(t *testing.T) {
	placements := map[*grid.CellAddress]int{
		grid.At(0, 0): 6, grid.At(0, 5): 4, grid.At(0, 7): 8,
		grid.At(1, 0): 9, grid.At(1, 1): 7, grid.At(2, 4): 3,
		grid.At(4, 2): 6, grid.At(4, 4): 8, grid.At(5, 3): 1,
		grid.At(7, 3): 6, grid.At(7, 4): 9, grid.At(8, 0): 2,
	}
	logic := NewValueExclusionLogic()
	for addr, value := range placements {
		logic.ApplyAndExclude(addr, value)
	}

	isPeer := func(a, b *grid.CellAddress) bool {
		for _, peer := range grid.PeerAddresses(a) {
			if peer == b {
				return true
			}
		}
		return false
	}
	for _, addr := range grid.AllCellAddresses() {
		if _, placed := placements[addr]; placed {
			assert.Equal(t, 0, logic.ApplicableValueCount(addr))
			continue
		}
		expectedCount := 0
		for value := 1; value <= 9; value++ {
			allowed := true
			for placedAddr, placedValue := range placements {
				if placedValue == value && isPeer(addr, placedAddr) {
					allowed = false
					break
				}
			}
			if allowed {
				expectedCount++
			}
			assert.Equal(t, allowed,
				logic.IsApplicable(UnambiguousCandidate{CellAddress: addr, Value: value}),
				"cell %s value %d", addr, value)
		}
		assert.Equal(t, expectedCount, logic.ApplicableValueCount(addr), "cell %s", addr)
	}
}
