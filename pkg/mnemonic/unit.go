package mnemonic

// TerminalSuffix is the sentinel numeric suffix marking a word that carries
// a single byte instead of two. It may only appear on the final word of a
// phrase.
const TerminalSuffix = 64

// WordUnit is one encoded element of a phrase: a 10-bit dictionary index
// plus a numeric suffix. A unit is either a full pair (16 bits of payload,
// suffix 0-63) or a terminal byte (8 bits of payload, suffix 64). The two
// cases are kept distinct here so the "terminal only in last position"
// rule is a property of construction, not just a decode-time check.
type WordUnit struct {
	index    uint16
	suffix   uint8
	terminal bool
}

// FullPair builds the unit for a big-endian byte pair. The 16-bit group
// splits into the top 10 bits (dictionary index) and bottom 6 (suffix).
func FullPair(b0, b1 byte) WordUnit {
	v := uint16(b0)<<8 | uint16(b1)
	return WordUnit{
		index:  v >> 6,
		suffix: uint8(v & 0x3F),
	}
}

// TerminalByte builds the unit for the unpaired final byte of an odd-length
// buffer. The byte is treated as the high byte of a 16-bit group whose low
// byte is zero, so the same 10/6 split yields index b<<2 with the low two
// index bits clear, and the suffix is forced to the sentinel.
func TerminalByte(b byte) WordUnit {
	return WordUnit{
		index:    uint16(b) << 2,
		suffix:   TerminalSuffix,
		terminal: true,
	}
}

// Index returns the 10-bit dictionary index.
func (u WordUnit) Index() uint16 {
	return u.index
}

// Suffix returns the numeric suffix rendered after the word: 0-63 for a
// full pair, TerminalSuffix for a terminal byte.
func (u WordUnit) Suffix() uint8 {
	return u.suffix
}

// Terminal reports whether the unit carries a single byte.
func (u WordUnit) Terminal() bool {
	return u.terminal
}

// appendBytes appends the unit's payload to dst: two bytes for a full pair,
// one for a terminal byte.
func (u WordUnit) appendBytes(dst []byte) []byte {
	if u.terminal {
		return append(dst, byte(u.index>>2))
	}
	v := u.index<<6 | uint16(u.suffix)
	return append(dst, byte(v>>8), byte(v))
}

// parseUnit validates a decoded (index, suffix) pair and rebuilds the unit.
// The suffix must be in [0, 64]; a terminal suffix additionally requires the
// low two index bits to be zero, since the encoder can only produce terminal
// indexes of the form b<<2. last reports whether the unit sits in the final
// position of the phrase.
func parseUnit(index uint16, suffix int, last bool) (WordUnit, error) {
	if suffix < 0 || suffix > TerminalSuffix {
		return WordUnit{}, ErrSuffixOutOfRange
	}
	if suffix == TerminalSuffix {
		if !last || index&0x3 != 0 {
			return WordUnit{}, ErrInvalidTerminalSuffix
		}
		return TerminalByte(byte(index >> 2)), nil
	}
	return WordUnit{index: index, suffix: uint8(suffix)}, nil
}
