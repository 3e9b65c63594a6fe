package stream

import "github.com/blockpulse/hotswap-streamer/internal/model"

// Cursor tracks the highest confirmed contiguous block and its hash. The hash
// anchor belongs to the cursor, so it survives endpoint switches: a
// replacement endpoint must continue the chain the previous one confirmed.
type Cursor struct {
	seeded  bool
	hasLast bool
	last    uint64
	anchor  []byte
}

// Seed positions the cursor just below the observed tip; history before the
// tip is never replayed. A tip at height 0 leaves the cursor empty so block 0
// is streamed first.
func (c *Cursor) Seed(latest uint64) {
	c.seeded = true
	if latest == 0 {
		return
	}
	c.hasLast = true
	c.last = latest - 1
}

// Seeded reports whether the cursor has been positioned.
func (c *Cursor) Seeded() bool { return c.seeded }

// Next returns the number of the next block to confirm.
func (c *Cursor) Next() uint64 {
	if !c.hasLast {
		return 0
	}
	return c.last + 1
}

// Advance confirms a block, moving the cursor and replacing the hash anchor.
func (c *Cursor) Advance(b model.Block) {
	c.hasLast = true
	c.last = b.Number
	c.anchor = append(c.anchor[:0], b.Hash...)
}

// Anchor returns the hash of the last confirmed block, or nil before any
// block has been confirmed in this run.
func (c *Cursor) Anchor() []byte { return c.anchor }

// LastConfirmed returns the cursor position; ok is false until a block has
// been confirmed or the cursor was seeded past one.
func (c *Cursor) LastConfirmed() (uint64, bool) { return c.last, c.hasLast }
