package hashmap

// Stats describes the current shape of the table.
type Stats struct {
	Len         int
	Capacity    int
	LoadFactor  float64 // Len / Capacity, 0 for an empty index
	UsedBuckets int     // buckets with at least one entry
	MaxChain    int     // longest collision chain
}

func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Len:      len(t.entries),
		Capacity: t.capacity,
	}

	if t.capacity > 0 {
		s.LoadFactor = float64(s.Len) / float64(s.Capacity)
	}

	for _, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}

		s.UsedBuckets++
		s.MaxChain = max(s.MaxChain, len(chain))
	}

	return s
}
