package uinteger

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary serialization. The record is {numBits int32, blockCount int32,
// blocks [blockCount]uint32}, all little-endian with fixed 32-bit
// widths, so the format does not depend on the host's natural integer
// width. Stream problems are reported as errors, never panics.

// Write serializes u to w.
func Write(u UInteger, w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, u.NumBits()); err != nil {
		return fmt.Errorf("uinteger.Write: %s", err.Error())
	}
	if err := binary.Write(w, binary.LittleEndian, u.Size()); err != nil {
		return fmt.Errorf("uinteger.Write: %s", err.Error())
	}
	if u.Size() == 0 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, u.Blocks()[:u.Size()]); err != nil {
		return fmt.Errorf("uinteger.Write: %s", err.Error())
	}
	return nil
}

// Read replaces u with a value deserialized from r. A malformed header
// or a destination capacity too small for the incoming value is an
// error, and u is left unchanged in those cases.
func Read(u UInteger, r io.Reader) error {
	var numBits, blockCount int32
	if err := binary.Read(r, binary.LittleEndian, &numBits); err != nil {
		return fmt.Errorf("uinteger.Read: %s", err.Error())
	}
	if err := binary.Read(r, binary.LittleEndian, &blockCount); err != nil {
		return fmt.Errorf("uinteger.Read: %s", err.Error())
	}
	if numBits < 0 || blockCount != blocksFor(numBits) {
		return fmt.Errorf(
			"uinteger.Read: corrupt header (numBits %d, blocks %d)",
			numBits, blockCount,
		)
	}
	if blockCount > u.MaxSize() {
		return fmt.Errorf(
			"uinteger.Read: %d blocks exceed destination capacity %d",
			blockCount, u.MaxSize(),
		)
	}
	if blockCount == 0 {
		u.SetNumBits(numBits)
		return nil
	}
	blocks := make([]uint32, blockCount)
	if err := binary.Read(r, binary.LittleEndian, blocks); err != nil {
		return fmt.Errorf("uinteger.Read: %s", err.Error())
	}
	u.SetNumBits(numBits)
	copy(u.Blocks(), blocks)
	return nil
}
