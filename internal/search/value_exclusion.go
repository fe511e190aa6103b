package search

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

const fullMask uint16 = 0b111111111

// candidateValues keeps track of the candidate values still applicable to a
// single cell. Bit v-1 of the mask is set if and only if the value v has not
// been excluded yet. The count of set bits is maintained incrementally so
// that exclusion stays O(1) per peer.
type candidateValues struct {
	bitmask uint16
	count   int
}

func (cv *candidateValues) clear() {
	cv.bitmask = 0
	cv.count = 0
}

// excludeValue clears the bit of the given value. It reports whether the
// exclusion has just left exactly one applicable value, i.e. whether an
// unambiguous candidate has been found.
func (cv *candidateValues) excludeValue(value int) bool {
	valueMask := uint16(1) << (value - 1)
	if cv.bitmask&valueMask == 0 {
		return false
	}
	cv.bitmask ^= valueMask
	cv.count--
	return cv.count == 1
}

func (cv *candidateValues) applicableValues() []int {
	values := make([]int, 0, cv.count)
	for value := 1; value <= 9; value++ {
		if cv.bitmask&(1<<(value-1)) != 0 {
			values = append(values, value)
		}
	}
	return values
}

func (cv *candidateValues) singleRemainingValue() int {
	if cv.count != 1 {
		panic(fmt.Sprintf("cannot provide single remaining applicable value (%d candidates remaining)", cv.count))
	}
	for value := 1; value <= 9; value++ {
		if cv.bitmask == 1<<(value-1) {
			return value
		}
	}
	panic("corrupt candidate bitmask")
}

func (cv *candidateValues) isApplicable(value int) bool {
	return cv.bitmask&(1<<(value-1)) != 0
}

// ValueExclusionLogic tracks, for every cell, which values have not been
// ruled out yet. Whenever a cell value is applied, the value is excluded for
// all 20 peers of the cell; peers left with a single applicable value are
// reported as unambiguous candidates (naked singles).
type ValueExclusionLogic struct {
	candidates [81]candidateValues
}

// NewValueExclusionLogic creates an instance with all nine values applicable
// to every cell.
func NewValueExclusionLogic() *ValueExclusionLogic {
	logic := &ValueExclusionLogic{}
	for i := range logic.candidates {
		logic.candidates[i] = candidateValues{bitmask: fullMask, count: 9}
	}
	return logic
}

// Copy creates a copy of this instance which behaves as if it was a deep
// copy. Later exclusions applied to the copy will not change this instance
// and vice versa.
func (l *ValueExclusionLogic) Copy() *ValueExclusionLogic {
	clone := *l
	return &clone
}

func (l *ValueExclusionLogic) record(addr *grid.CellAddress) *candidateValues {
	return &l.candidates[9*addr.Row()+addr.Column()]
}

// ApplyAndExclude applies the given value to the cell with the given address
// and excludes the value for all peers of the cell. It returns one
// UnambiguousCandidate for each peer left with a single applicable value by
// this exclusion; the result is nil if there is no such peer. Peers are
// visited in their fixed precomputed order, so the result is deterministic
// for a given input.
func (l *ValueExclusionLogic) ApplyAndExclude(addr *grid.CellAddress, value int) []UnambiguousCandidate {
	logrus.WithFields(logrus.Fields{
		"cell":  addr,
		"value": value,
	}).Debug("applying candidate value")
	l.record(addr).clear()
	var result []UnambiguousCandidate
	for _, peer := range grid.PeerAddresses(addr) {
		peerRecord := l.record(peer)
		if peerRecord.excludeValue(value) {
			result = append(result, UnambiguousCandidate{
				CellAddress: peer,
				Value:       peerRecord.singleRemainingValue(),
			})
		}
	}
	return result
}

// UndefinedCellCandidates returns the candidate values applicable to one of
// the undefined cells, selected according to the given query mode. It
// returns nil if no cell has any applicable candidates left.
func (l *ValueExclusionLogic) UndefinedCellCandidates(mode CandidateQueryMode) *CandidateList {
	switch mode {
	case FirstUndefinedCell:
		return l.candidatesForFirstUndefinedCell()
	case UndefinedCellWithLeastCandidates:
		return l.candidatesForCellWithLeastCandidates()
	}
	panic(fmt.Sprintf("unexpected candidate query mode %d", mode))
}

func (l *ValueExclusionLogic) candidatesForFirstUndefinedCell() *CandidateList {
	for _, addr := range grid.AllCellAddresses() {
		if record := l.record(addr); record.count > 0 {
			return &CandidateList{CellAddress: addr, Values: record.applicableValues()}
		}
	}
	return nil
}

func (l *ValueExclusionLogic) candidatesForCellWithLeastCandidates() *CandidateList {
	var result *CandidateList
	for _, addr := range grid.AllCellAddresses() {
		record := l.record(addr)
		if record.count == 0 {
			continue
		}
		if result == nil || record.count < result.Len() {
			result = &CandidateList{CellAddress: addr, Values: record.applicableValues()}
		}
	}
	return result
}

// IsApplicable reports whether the value carried by the given candidate is
// still applicable to its cell. Queued candidates are checked through this
// method before consumption, since later placements may have invalidated
// them.
func (l *ValueExclusionLogic) IsApplicable(candidate UnambiguousCandidate) bool {
	return l.record(candidate.CellAddress).isApplicable(candidate.Value)
}

// ApplicableValueCount returns the number of candidate values that have not
// been excluded yet for the cell with the given address.
func (l *ValueExclusionLogic) ApplicableValueCount(addr *grid.CellAddress) int {
	return l.record(addr).count
}
