package types

import (
	"encoding/binary"
	"io"
)

// ReadUint16 reads a little-endian 16-bit integer.
func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, WrapIO(err, "read uint16")
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUint32 reads a little-endian 32-bit integer.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, WrapIO(err, "read uint32")
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadUint64 reads a little-endian 64-bit integer.
func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, WrapIO(err, "read uint64")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteUint16 writes a little-endian 16-bit integer.
func WriteUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return WrapIO(err, "write uint16")
	}
	return nil
}

// WriteUint32 writes a little-endian 32-bit integer.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return WrapIO(err, "write uint32")
	}
	return nil
}

// WriteUint64 writes a little-endian 64-bit integer.
func WriteUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return WrapIO(err, "write uint64")
	}
	return nil
}

// ReadBytes reads exactly n raw bytes.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, WrapIO(err, "read bytes")
	}
	return b, nil
}

// ReadAnsiString reads a fixed-length, single-byte code-page string of
// exactly n bytes (no terminator).
func ReadAnsiString(r io.Reader, n int) (string, error) {
	b, err := ReadBytes(r, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadWideString reads a fixed-length wide string whose on-disk byte
// length is n (n must be even); the returned slice holds n/2 code units.
func ReadWideString(r io.Reader, n int) ([]uint16, error) {
	if n%2 != 0 {
		return nil, NewError(ReasonShortIO, "wide string byte length is not even")
	}
	b, err := ReadBytes(r, n)
	if err != nil {
		return nil, err
	}
	units := make([]uint16, n/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return units, nil
}

// WriteWideString writes code units as little-endian 16-bit values,
// with no terminator.
func WriteWideString(w io.Writer, units []uint16) error {
	for _, u := range units {
		if err := WriteUint16(w, u); err != nil {
			return err
		}
	}
	return nil
}

// ReadAnsiNulString reads an 8-bit, NUL-terminated string. The
// terminator is consumed from the stream but not retained in the
// returned string.
func ReadAnsiNulString(r io.Reader) (string, error) {
	var out []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", WrapIO(err, "read ansi nul string")
		}
		if b[0] == 0 {
			return string(out), nil
		}
		out = append(out, b[0])
	}
}

// WriteAnsiNulString writes s as 8-bit bytes followed by a NUL.
func WriteAnsiNulString(w io.Writer, s string) error {
	if _, err := w.Write([]byte(s)); err != nil {
		return WrapIO(err, "write ansi nul string")
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return WrapIO(err, "write ansi nul string terminator")
	}
	return nil
}

// ReadWideNulString reads a wide, NUL-terminated (single zero code
// unit) string. The terminator is consumed but not retained.
func ReadWideNulString(r io.Reader) ([]uint16, error) {
	var out []uint16
	for {
		u, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		if u == 0 {
			return out, nil
		}
		out = append(out, u)
	}
}

// WriteWideNulString writes units followed by a zero code unit.
func WriteWideNulString(w io.Writer, units []uint16) error {
	if err := WriteWideString(w, units); err != nil {
		return err
	}
	return WriteUint16(w, 0)
}

// WideLen scans units up to (and not including) the first zero code
// unit, mirroring the wide-NUL-scan setter behavior described for
// fixed-size extra-data payload fields.
func WideLen(units []uint16) int {
	for i, u := range units {
		if u == 0 {
			return i
		}
	}
	return len(units)
}
