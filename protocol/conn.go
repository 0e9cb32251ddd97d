package protocol

import (
	"encoding"
	"errors"
	"fmt"
	"io"
)

// Conn reads and writes whole frames on a byte stream.
type Conn struct {
	rw io.ReadWriter
}

// NewConn wraps a stream, typically a net.Conn.
func NewConn(rw io.ReadWriter) *Conn {
	return &Conn{rw: rw}
}

// readFrame reads exactly size bytes, accumulating as many reads as needed.
func (c *Conn) readFrame(kind Kind, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(c.rw, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read %s: %w", kind, ErrConnectionLost)
		}
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}
	return buf, nil
}

func (c *Conn) write(m encoding.BinaryMarshaler) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = c.rw.Write(data)
	return err
}

// ReadRequest reads the Request frame opening a session.
func (c *Conn) ReadRequest() (Request, error) {
	data, err := c.readFrame(KindRequest, RequestSize)
	if err != nil {
		return Request{}, err
	}
	return DecodeRequest(data)
}

// WriteRequest sends the Request frame opening a session.
func (c *Conn) WriteRequest(m Request) error {
	return c.write(m)
}

// ReadServerPayload reads one card frame sent by the server.
func (c *Conn) ReadServerPayload() (ServerPayload, error) {
	data, err := c.readFrame(KindPayload, ServerPayloadSize)
	if err != nil {
		return ServerPayload{}, err
	}
	return DecodeServerPayload(data)
}

// WriteServerPayload sends one card frame to the client.
func (c *Conn) WriteServerPayload(m ServerPayload) error {
	return c.write(m)
}

// ReadClientPayload reads one decision frame sent by the client.
func (c *Conn) ReadClientPayload() (ClientPayload, error) {
	data, err := c.readFrame(KindPayload, ClientPayloadSize)
	if err != nil {
		return ClientPayload{}, err
	}
	return DecodeClientPayload(data)
}

// WriteClientPayload sends one decision frame to the server.
func (c *Conn) WriteClientPayload(m ClientPayload) error {
	return c.write(m)
}
