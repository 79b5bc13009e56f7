package bitexpr

import "sync"

type ResultSetStats struct {
	Lookups uint
	Hits    uint
}

// ResultSet is a set of vectors bucketed by Hash. Two vectors are the same
// member when Equals holds.
type ResultSet struct {
	lock    sync.RWMutex
	buckets map[uint64][]*BitVector
	size    int

	stats ResultSetStats
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		buckets: map[uint64][]*BitVector{},
	}
}

// Add inserts bv and reports whether it was not already a member.
func (rs *ResultSet) Add(bv *BitVector) bool {
	if bv == nil {
		return false
	}

	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.stats.Lookups += 1

	h := bv.Hash()
	bucket := rs.buckets[h]
	for i := 0; i < len(bucket); i++ {
		if bucket[i].Equals(bv) {
			rs.stats.Hits += 1
			return false
		}
	}
	rs.buckets[h] = append(bucket, bv)
	rs.size += 1
	return true
}

func (rs *ResultSet) Contains(bv *BitVector) bool {
	if bv == nil {
		return false
	}

	rs.lock.RLock()
	defer rs.lock.RUnlock()

	for _, other := range rs.buckets[bv.Hash()] {
		if other.Equals(bv) {
			return true
		}
	}
	return false
}

func (rs *ResultSet) Len() int {
	rs.lock.RLock()
	defer rs.lock.RUnlock()

	return rs.size
}

func (rs *ResultSet) Stats() ResultSetStats {
	rs.lock.RLock()
	defer rs.lock.RUnlock()

	return rs.stats
}
