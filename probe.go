package hashmap

// Probe returns the slot index examined on the given attempt for key in a
// table of the given capacity:
//
//	index = (h1 + attempt*(h2+1)) mod capacity
//
// where h1 and h2 are the two hashes of key modulo capacity.
func Probe(h Hasher, key string, capacity, attempt int) int {
	return newProbeSeq(h, key, capacity).at(attempt)
}

// probeSeq caches both hashes of one key so a lookup hashes it only once.
type probeSeq struct {
	start    uint64
	step     uint64
	capacity uint64
}

func newProbeSeq(h Hasher, key string, capacity int) probeSeq {
	c := uint64(capacity)
	step := h.Hash(key, prime2, c) + 1
	if step%c == 0 {
		// h2 == capacity-1 would pin the sequence to its first slot.
		step = 1
	}
	return probeSeq{
		start:    h.Hash(key, prime1, c),
		step:     step,
		capacity: c,
	}
}

func (p probeSeq) at(attempt int) int {
	return int((p.start + uint64(attempt)*p.step) % p.capacity)
}
