// Package protocol implements the fixed-layout binary frames exchanged by the
// Blackjack server and its clients.
//
// Every frame starts with the 4-byte magic cookie 0xabcddcba and a 1-byte kind
// tag, followed by fields whose size depends only on the kind:
//
//	Offer           39 B  port (2) + server name (32)
//	Request         38 B  rounds (1) + team name (32)
//	ServerPayload    9 B  result (1) + rank (2) + suit (1)
//	ClientPayload   10 B  decision (5)
//
// Integers are big-endian. Strings are UTF-8, NUL-padded to the field size and
// truncated on a rune boundary when longer. Decoding strips trailing NULs and
// replaces invalid UTF-8 with U+FFFD.
//
// Offers travel over UDP broadcast; the other frames over a TCP stream, read
// with Conn which accumulates partial reads until a whole frame is available.
package protocol
