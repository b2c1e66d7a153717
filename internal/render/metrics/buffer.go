package metrics

// Buffer accumulates sampled records until the flush threshold is reached.
type Buffer struct {
	records []Record
}

// Push appends a record and evaluates the flush threshold.
//
// When the buffer holds at least size records, the most recently pushed
// record is returned with ok set and the buffer is emptied. A size below 1 is
// treated as 1. The buffer never holds more than size records when the flush
// is decided, even if size shrank since the previous Push.
func (b *Buffer) Push(rec Record, size int) (flushed Record, ok bool) {
	if size < 1 {
		size = 1
	}

	b.Fit(size)
	b.records = append(b.records, rec)
	if len(b.records) < size {
		return nil, false
	}

	latest := b.records[len(b.records)-1]
	b.Clear()
	return latest, true
}

// Fit drops the oldest records so that at most size-1 remain, leaving room
// for the record that reaches the flush threshold. A size below 1 is treated
// as 1.
func (b *Buffer) Fit(size int) {
	if size < 1 {
		size = 1
	}

	keep := size - 1
	if len(b.records) <= keep {
		return
	}

	n := copy(b.records, b.records[len(b.records)-keep:])
	clear(b.records[n:])
	b.records = b.records[:n]
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int {
	return len(b.records)
}

// Records returns a copy of the buffered records, oldest first.
func (b *Buffer) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	clear(b.records)
	b.records = b.records[:0]
}
