package tagjson

const hexDigits = "0123456789ABCDEF"

// appendQuoted appends a JSON string literal for s, surrounding quotes
// included. The scan is byte-level: backslash and quote are escaped,
// newline becomes \n, other control bytes and 0x7F become \uXXXX, and
// multi-byte UTF-8 sequences are decoded so the whole codepoint can be
// escaped (or, with EscapeUnicode off, copied through verbatim).
func appendQuoted(dst []byte, s string, opt Options) []byte {
	dst = append(dst, '"')
	n := len(s)
	for p := 0; p < n; p++ {
		c := s[p]
		switch {
		case c == '\\' || c == '"':
			dst = append(dst, '\\', c)
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c < 0x20 || c == 0x7F:
			dst = appendEscaped(dst, uint32(c))
		case c >= 0x80:
			cp, size := decodeMulti(s, p)
			switch {
			case size == 0:
				// Truncated sequence or stray continuation byte.
				if opt.MalformedUTF8 == MalformedReplace {
					dst = appendEscaped(dst, 0xFFFD)
				} else {
					dst = append(dst, c)
				}
			case opt.EscapeUnicode:
				dst = appendEscaped(dst, cp)
				p += size - 1
			default:
				dst = append(dst, s[p:p+size]...)
				p += size - 1
			}
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

// decodeMulti decodes the multi-byte UTF-8 sequence starting at s[p],
// returning the codepoint and the sequence length. Length zero means
// s[p] is not a lead byte with enough bytes remaining. Continuation
// bytes are masked, not validated.
func decodeMulti(s string, p int) (uint32, int) {
	c := s[p]
	n := len(s)
	switch {
	case c >= 0xC0 && c < 0xE0 && n-p >= 2:
		return uint32(c&0x1F)<<6 | uint32(s[p+1]&0x3F), 2
	case c >= 0xE0 && c < 0xF0 && n-p >= 3:
		return uint32(c&0x0F)<<12 | uint32(s[p+1]&0x3F)<<6 | uint32(s[p+2]&0x3F), 3
	case c >= 0xF0 && c < 0xF8 && n-p >= 4:
		return uint32(c&0x07)<<18 | uint32(s[p+1]&0x3F)<<12 | uint32(s[p+2]&0x3F)<<6 | uint32(s[p+3]&0x3F), 4
	}
	return 0, 0
}

// appendEscaped appends the \uXXXX escape for cp. Codepoints beyond the
// Basic Multilingual Plane become a UTF-16 surrogate pair, high
// surrogate first.
func appendEscaped(dst []byte, cp uint32) []byte {
	if cp < 0x10000 {
		return appendHex4(dst, cp)
	}
	dst = appendHex4(dst, 0xD800+((cp-0x10000)>>10))
	return appendHex4(dst, 0xDC00+(cp&0x3FF))
}

func appendHex4(dst []byte, v uint32) []byte {
	return append(dst, '\\', 'u',
		hexDigits[v>>12&0xF],
		hexDigits[v>>8&0xF],
		hexDigits[v>>4&0xF],
		hexDigits[v&0xF])
}
