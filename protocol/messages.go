package protocol

import (
	"encoding"
	"encoding/binary"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

var be = binary.BigEndian

var (
	_ encoding.BinaryMarshaler   = Offer{}
	_ encoding.BinaryUnmarshaler = (*Offer)(nil)
	_ encoding.BinaryMarshaler   = Request{}
	_ encoding.BinaryUnmarshaler = (*Request)(nil)
	_ encoding.BinaryMarshaler   = ServerPayload{}
	_ encoding.BinaryUnmarshaler = (*ServerPayload)(nil)
	_ encoding.BinaryMarshaler   = ClientPayload{}
	_ encoding.BinaryUnmarshaler = (*ClientPayload)(nil)
)

// Offer is broadcast by a server to advertise its TCP port and name.
type Offer struct {
	Port       uint16
	ServerName string
}

func (m Offer) MarshalBinary() ([]byte, error) {
	buf := make([]byte, OfferSize)
	putHeader(buf, KindOffer)
	be.PutUint16(buf[5:7], m.Port)
	putString(buf[7:], m.ServerName)
	return buf, nil
}

func (m *Offer) UnmarshalBinary(data []byte) error {
	if err := checkHeader(data, KindOffer, OfferSize); err != nil {
		return err
	}
	m.Port = be.Uint16(data[5:7])
	m.ServerName = getString(data[7:])
	return nil
}

// DecodeOffer parses an Offer frame.
func DecodeOffer(data []byte) (Offer, error) {
	var m Offer
	err := m.UnmarshalBinary(data)
	return m, err
}

// Request opens a session: the client's team name and how many rounds it plays.
type Request struct {
	Rounds   uint8
	TeamName string
}

func (m Request) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RequestSize)
	putHeader(buf, KindRequest)
	buf[5] = m.Rounds
	putString(buf[6:], m.TeamName)
	return buf, nil
}

func (m *Request) UnmarshalBinary(data []byte) error {
	if err := checkHeader(data, KindRequest, RequestSize); err != nil {
		return err
	}
	m.Rounds = data[5]
	m.TeamName = getString(data[6:])
	return nil
}

// DecodeRequest parses a Request frame.
func DecodeRequest(data []byte) (Request, error) {
	var m Request
	err := m.UnmarshalBinary(data)
	return m, err
}

// ServerPayload carries a dealt card and the result of the round so far.
type ServerPayload struct {
	Result blackjack.Result
	Rank   uint16
	Suit   uint8
}

// NewServerPayload builds the payload announcing c with result.
func NewServerPayload(c blackjack.Card, result blackjack.Result) ServerPayload {
	return ServerPayload{Result: result, Rank: uint16(c.Rank()), Suit: c.Suit()}
}

// Card validates the rank and suit of the payload.
func (m ServerPayload) Card() (blackjack.Card, error) {
	if m.Rank > 0xff {
		return blackjack.NewCard(m.Suit, 0)
	}
	return blackjack.NewCard(m.Suit, uint8(m.Rank))
}

func (m ServerPayload) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ServerPayloadSize)
	putHeader(buf, KindPayload)
	buf[5] = byte(m.Result)
	be.PutUint16(buf[6:8], m.Rank)
	buf[8] = m.Suit
	return buf, nil
}

func (m *ServerPayload) UnmarshalBinary(data []byte) error {
	if err := checkHeader(data, KindPayload, ServerPayloadSize); err != nil {
		return err
	}
	m.Result = blackjack.Result(data[5])
	m.Rank = be.Uint16(data[6:8])
	m.Suit = data[8]
	return nil
}

// DecodeServerPayload parses a server-to-client Payload frame.
func DecodeServerPayload(data []byte) (ServerPayload, error) {
	var m ServerPayload
	err := m.UnmarshalBinary(data)
	return m, err
}

// ClientPayload carries the player's decision.
type ClientPayload struct {
	Decision blackjack.Decision
}

func (m ClientPayload) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ClientPayloadSize)
	putHeader(buf, KindPayload)
	putString(buf[5:], string(m.Decision))
	return buf, nil
}

func (m *ClientPayload) UnmarshalBinary(data []byte) error {
	if err := checkHeader(data, KindPayload, ClientPayloadSize); err != nil {
		return err
	}
	m.Decision = blackjack.Decision(getString(data[5:]))
	return nil
}

// DecodeClientPayload parses a client-to-server Payload frame.
func DecodeClientPayload(data []byte) (ClientPayload, error) {
	var m ClientPayload
	err := m.UnmarshalBinary(data)
	return m, err
}
