// Package hashing provides position hashing and duplicate detection for Go games.
package hashing

import (
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the move counts to agree
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	size        int

	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final mainline position
	Hash uint64
	// MoveCount is the number of the last mainline move
	MoveCount int
	// WeakHash is a secondary hash for confirmation
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game from its final mainline position.
func Signature(g *goban.Game) GameSignature {
	final, err := g.Board(g.MainlineEnd())
	if err != nil {
		return GameSignature{}
	}
	return GameSignature{
		Hash:      Zobrist(final),
		MoveCount: g.FinalMoveNumber(),
		WeakHash:  WeakHash(final),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(g *goban.Game) bool {
	if g == nil {
		return false
	}
	return d.checkSignature(Signature(g))
}

func (d *DuplicateDetector) checkSignature(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
