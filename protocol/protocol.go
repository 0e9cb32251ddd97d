package protocol

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MagicCookie prefixes every frame.
const MagicCookie uint32 = 0xabcddcba

// Kind is the message-kind tag following the magic cookie.
type Kind uint8

const (
	KindOffer   Kind = 0x02
	KindRequest Kind = 0x03
	KindPayload Kind = 0x04
)

func (k Kind) String() string {
	switch k {
	case KindOffer:
		return "offer"
	case KindRequest:
		return "request"
	case KindPayload:
		return "payload"
	default:
		return fmt.Sprintf("kind(0x%02x)", uint8(k))
	}
}

// Field and frame sizes in bytes.
const (
	HeaderSize   = 5
	NameSize     = 32
	DecisionSize = 5

	OfferSize         = HeaderSize + 2 + NameSize
	RequestSize       = HeaderSize + 1 + NameSize
	ServerPayloadSize = HeaderSize + 1 + 2 + 1
	ClientPayloadSize = HeaderSize + DecisionSize
)

var (
	// ErrInvalidFrame matches every decode failure.
	ErrInvalidFrame = errors.New("invalid frame")
	ErrFrameLength  = errors.New("wrong frame length")
	ErrMagicCookie  = errors.New("wrong magic cookie")
	ErrMessageKind  = errors.New("wrong message kind")
	// ErrConnectionLost is returned when the stream ends before a whole frame is read.
	ErrConnectionLost = errors.New("connection lost")
)

func invalid(kind Kind, reason error) error {
	return fmt.Errorf("decode %s: %w: %w", kind, ErrInvalidFrame, reason)
}

// checkHeader validates length, cookie and tag of a frame of the given kind.
func checkHeader(data []byte, kind Kind, size int) error {
	if len(data) != size {
		return invalid(kind, ErrFrameLength)
	}
	if cookie := be.Uint32(data[0:4]); cookie != MagicCookie {
		return invalid(kind, ErrMagicCookie)
	}
	if Kind(data[4]) != kind {
		return invalid(kind, ErrMessageKind)
	}
	return nil
}

func putHeader(buf []byte, kind Kind) {
	be.PutUint32(buf[0:4], MagicCookie)
	buf[4] = byte(kind)
}

// putString copies s into field, truncating on a rune boundary and padding
// the remainder with NUL bytes.
func putString(field []byte, s string) {
	if len(s) > len(field) {
		cut := len(field)
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	n := copy(field, s)
	clear(field[n:])
}

// getString returns the field content without trailing NUL bytes.
func getString(field []byte) string {
	s := strings.TrimRight(string(field), "\x00")
	return strings.ToValidUTF8(s, "�")
}
