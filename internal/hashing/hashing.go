// Package hashing provides duplicate detection for decoded positions.
package hashing

import (
	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/position"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// hasher picks what part of a position is hashed
	hasher *PositionHasher
	// useExactMatch also requires the move clocks to agree
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	// stored counts the signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the key produced by the detector's hasher
	Hash uint64
	// Occupied is the combined occupancy, a cheap second check
	Occupied chess.BitBoard
	// Halfmove and Fullmove are the clocks, compared only in exact mode
	Halfmove uint
	Fullmove uint
}

// NewDuplicateDetector creates a new duplicate detector that hashes the
// full position. maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		hasher:        NewPositionHasher(HashFullPosition),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// SetHashType changes the hashing strategy. Call it before the first
// CheckAndAdd; signatures already stored keep their old keys.
func (d *DuplicateDetector) SetHashType(ht HashType) {
	d.hasher = NewPositionHasher(ht)
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash
// table. Returns true if the position is a duplicate. Once the detector is
// full, new positions are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(pos *position.Position) bool {
	if pos == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     d.hasher.HashPosition(pos),
		Occupied: pos.Occupied(),
		Halfmove: pos.Halfmove,
		Fullmove: pos.Fullmove,
	}

	// Check for duplicates
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}

	// Add to hash table
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	// Primary check: hash must match (already implied by hash table key)
	if a.Hash != b.Hash {
		return false
	}

	// Secondary check: occupancy for additional confidence
	if a.Occupied != b.Occupied {
		return false
	}

	// Optional: check the clocks
	if d.useExactMatch && (a.Halfmove != b.Halfmove || a.Fullmove != b.Fullmove) {
		return false
	}

	return true
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.stored = 0
	d.duplicateCount = 0
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFullPosition hashes placement, side to move, castling and en passant
	HashFullPosition HashType = iota
	// HashPlacement hashes only the piece placement
	HashPlacement
)

// PositionHasher provides different hashing strategies for positions.
type PositionHasher struct {
	hashType HashType
}

// NewPositionHasher creates a new position hasher with the specified strategy.
func NewPositionHasher(ht HashType) *PositionHasher {
	return &PositionHasher{hashType: ht}
}

// HashPosition generates a hash for the position based on the hash type.
func (ph *PositionHasher) HashPosition(pos *position.Position) uint64 {
	switch ph.hashType {
	case HashPlacement:
		return ph.hashPlacement(pos)
	default:
		return pos.Hash()
	}
}

// hashPlacement hashes a copy of the position with the side to move,
// castling rights and en passant square cleared.
func (ph *PositionHasher) hashPlacement(pos *position.Position) uint64 {
	bare := position.New()
	bare.Pieces = pos.Pieces
	return bare.Hash()
}
