package hashing

import (
	"sync"

	"github.com/lgbarn/bitboard-go/internal/position"
)

// DuplicateChecker is satisfied by both detectors so callers can pick one
// based on the worker count.
type DuplicateChecker interface {
	CheckAndAdd(pos *position.Position) bool
	DuplicateCount() int
	UniqueCount() int
}

var (
	_ DuplicateChecker = (*DuplicateDetector)(nil)
	_ DuplicateChecker = (*ThreadSafeDuplicateDetector)(nil)
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// SetHashType changes the hashing strategy of the wrapped detector.
func (d *ThreadSafeDuplicateDetector) SetHashType(ht HashType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.SetHashType(ht)
}

// CheckAndAdd atomically checks if a position is a duplicate and adds it to the hash table.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(pos *position.Position) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(pos)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// LoadFromDetector copies entries from an existing detector. Call before concurrent use.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(other *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for hash, sigs := range other.hashTable {
		d.detector.hashTable[hash] = append(d.detector.hashTable[hash], sigs...)
		d.detector.stored += len(sigs)
	}
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}

// Reset clears the wrapped detector.
func (d *ThreadSafeDuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Reset()
}
