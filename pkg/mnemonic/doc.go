// Package mnemonic converts arbitrary binary data into a human-pronounceable
// phrase and back.
//
// Each word of a phrase carries 16 bits: the first 10 bits select a word
// from the fixed 1024-word table in pkg/dict, and the remaining 6 bits are
// rendered as a decimal number between 0 and 63 appended to the word. The
// suffix 64 is a sentinel: it marks a word that carries only 1 byte instead
// of 2, and only the final word of a phrase may use it.
//
// # Bit Layout
//
// A full pair of input bytes (b0, b1) forms the big-endian 16-bit group
//
//	v = b0<<8 | b1
//	+----------------+--------+
//	| index (10 bits)| suffix |
//	|     v >> 6     | v & 63 |
//	+----------------+--------+
//
// and is rendered as the dictionary word for the index immediately followed
// by the decimal suffix, e.g. "abbey0" for two zero bytes.
//
// An odd-length buffer leaves one unpaired byte b. It is treated as the
// high byte of a 16-bit group whose low byte is zero, split the same way:
//
//	index = (b << 8) >> 6 = b << 2    (low two index bits always zero)
//	suffix = 64                       (sentinel, replaces the computed 0)
//
// Decoding reverses both forms exactly. A terminal token whose index has
// non-zero low bits cannot have come from this encoder and is rejected, so
// a successful decode always reproduces the original buffer byte for byte.
//
// # Usage
//
//	codec := mnemonic.NewCodec()
//
//	phrase := codec.Encode([]byte{0x01, 0x02, 0x03})
//
//	data, err := codec.Decode(phrase)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Encoding cannot fail. Decoding returns typed errors discriminated with
// errors.Is:
//
//   - ErrMalformedToken: token has no valid trailing decimal suffix
//   - ErrUnknownWord: word portion is not in the dictionary
//   - ErrSuffixOutOfRange: suffix parsed outside [0, 64]
//   - ErrInvalidTerminalSuffix: suffix 64 off the final position, or a
//     terminal index the encoder could not have produced
//
// All state outside a call is the read-only word table, so a single Codec
// may be shared across goroutines without locking.
package mnemonic
