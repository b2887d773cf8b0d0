package vcard

// streaming.go provides reader wrappers applied to VCF input before it
// reaches the parser:
//
//   - bomSkipper: removes the UTF-8 BOM (0xEF 0xBB 0xBF) that Windows
//     contact exports commonly prepend
//   - utf8Sanitizer: replaces invalid UTF-8 bytes with '?' so a corrupt
//     export cannot poison field values
//
// Use WrapReader to apply both in the correct order.

import (
	"io"
	"unicode/utf8"
)

// WrapReader wraps a raw VCF input stream with BOM skipping and UTF-8
// sanitizing. The BOM must be stripped before any other processing.
func WrapReader(r io.Reader) io.Reader {
	return &utf8Sanitizer{reader: &bomSkipper{reader: r}}
}

// bomSkipper removes a leading UTF-8 BOM on the first read.
type bomSkipper struct {
	reader  io.Reader
	checked bool
	held    []byte
}

func (b *bomSkipper) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		var buf [3]byte
		n, err := io.ReadFull(b.reader, buf[:])
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if n > 0 {
			if n == 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
				// BOM found, drop it.
			} else {
				b.held = append(b.held, buf[:n]...)
			}
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}

	if len(b.held) > 0 {
		n := copy(p, b.held)
		b.held = b.held[n:]
		return n, nil
	}
	return b.reader.Read(p)
}

// utf8Sanitizer replaces invalid UTF-8 sequences with '?' on the fly.
// Incomplete multi-byte sequences at a read boundary are carried over to
// the next read so valid runes are never split.
type utf8Sanitizer struct {
	reader  io.Reader
	pending []byte
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := copy(p, s.pending)
	s.pending = s.pending[:0]

	n, err := s.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	data := p[:n]
	if utf8.Valid(data) {
		if err != io.EOF {
			if trail := incompleteTail(data); trail > 0 {
				s.pending = append(s.pending, data[n-trail:]...)
				return n - trail, err
			}
		}
		return n, err
	}

	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])
		if r == utf8.RuneError && size == 1 {
			if err != io.EOF && len(data)-read < utf8.UTFMax && utf8.RuneStart(data[read]) {
				// Possibly an incomplete sequence at the boundary.
				s.pending = append(s.pending, data[read:]...)
				break
			}
			data[write] = '?'
			write++
			read++
			continue
		}
		copy(data[write:], data[read:read+size])
		write += size
		read += size
	}
	return write, err
}

// incompleteTail returns how many trailing bytes form the start of an
// unfinished multi-byte UTF-8 sequence, or 0 when the data ends cleanly.
func incompleteTail(data []byte) int {
	for i := 1; i <= utf8.UTFMax && i <= len(data); i++ {
		b := data[len(data)-i]
		if !utf8.RuneStart(b) {
			continue
		}
		if b < utf8.RuneSelf {
			return 0
		}
		want := 2
		switch {
		case b >= 0xF0:
			want = 4
		case b >= 0xE0:
			want = 3
		}
		if i < want {
			return i
		}
		return 0
	}
	return 0
}
