// Package utf16x converts between UTF-8 and the little-endian UTF-16 used
// by host strings.
//
// Invalid UTF-8 encodes as U+FFFD and unpaired surrogates decode as U+FFFD.
// Encoders and decoders from golang.org/x/text carry state, so every call
// builds its own.
package utf16x

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Converter implements the transcoder's StringConverter with x/text.
type Converter struct{}

// UTF16Len returns the number of UTF-16 units src encodes to.
func (Converter) UTF16Len(src []byte) int {
	enc := utf16le.NewEncoder()
	var scratch [1024]byte
	units := 0
	for len(src) > 0 {
		nDst, nSrc, err := enc.Transform(scratch[:], src, true)
		units += nDst / 2
		src = src[nSrc:]
		if err != nil && err != transform.ErrShortDst {
			return -1
		}
		if nSrc == 0 && nDst == 0 {
			return -1
		}
	}
	return units
}

// EncodeUTF16 writes src into dst as UTF-16LE and returns the number of
// units written. It returns -1 when dst is too small or conversion fails;
// dst contents are unspecified in that case.
func (Converter) EncodeUTF16(dst, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	nDst, nSrc, err := utf16le.NewEncoder().Transform(dst, src, true)
	if err != nil || nSrc != len(src) {
		return -1
	}
	return nDst / 2
}

// DecodeUTF16 converts UTF-16LE bytes to UTF-8. A trailing odd byte is
// ignored.
func (Converter) DecodeUTF16(src []byte) string {
	if len(src)%2 != 0 {
		src = src[:len(src)-1]
	}
	if len(src) == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(src)
	if err != nil {
		return ""
	}
	return string(out)
}

// Encode converts src to UTF-16LE bytes.
func Encode(src string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(src))
}

// Decode converts UTF-16LE bytes to a UTF-8 string.
func Decode(src []byte) string {
	return Converter{}.DecodeUTF16(src)
}
