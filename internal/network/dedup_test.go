package network

import "testing"

func TestSeqDedupDetectsDuplicates(t *testing.T) {
	d := newSeqDedup()

	if d.isDuplicate(1) {
		t.Error("first occurrence of seq 1 flagged as duplicate")
	}
	if !d.isDuplicate(1) {
		t.Error("second occurrence of seq 1 not flagged")
	}
	if d.isDuplicate(2) {
		t.Error("first occurrence of seq 2 flagged as duplicate")
	}
}

func TestSeqDedupEvictsOldEntries(t *testing.T) {
	d := newSeqDedup()

	// Fill well past the ring capacity.
	for seq := uint32(1); seq <= 1024; seq++ {
		if d.isDuplicate(seq) {
			t.Fatalf("fresh seq %d flagged as duplicate", seq)
		}
	}
	// Early sequence numbers have been evicted and read as fresh again.
	if d.isDuplicate(1) {
		t.Error("evicted seq 1 still flagged as duplicate")
	}
	// Recent ones are still tracked.
	if !d.isDuplicate(1024) {
		t.Error("recent seq 1024 not flagged as duplicate")
	}
}
