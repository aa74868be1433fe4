package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/redox-os/orbital/internal/scheme"
)

// Client is a thin wrapper over the same request/response grammar
// orbitald's connHandler speaks (cmd/orbitald/io.go): a one-byte opcode
// followed by '\x00'-joined arguments, replied to with a status byte
// plus payload.
type Client struct {
	conn *scheme.Conn
}

func Dial(path string) (*Client, error) {
	conn, err := scheme.Dial(path)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) call(op byte, args ...string) ([]byte, error) {
	msg := append([]byte{op}, []byte(strings.Join(args, "\x00"))...)
	if err := c.conn.WriteMessage(msg); err != nil {
		return nil, err
	}
	resp, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, errors.New("orbitalctl: empty response")
	}
	if resp[0] != 0 {
		return nil, errors.New(string(resp[1:]))
	}
	return resp[1:], nil
}

// WindowInfo is one row of the admin window listing.
type WindowInfo struct {
	ID    int
	Title string
}

// ListWindows asks orbitald for the open window list via the admin-only
// 'L' opcode (distinct from the client-facing open/read/write grammar).
func (c *Client) ListWindows() ([]WindowInfo, error) {
	payload, err := c.call('L')
	if err != nil {
		return nil, err
	}
	var windows []WindowInfo
	for _, line := range strings.Split(string(payload), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		id, _ := strconv.Atoi(parts[0])
		windows = append(windows, WindowInfo{ID: id, Title: parts[1]})
	}
	return windows, nil
}

func (c *Client) WriteClipboard(windowID int, data string) error {
	_, err := c.call('K', strconv.Itoa(windowID), data)
	return err
}

func (c *Client) Tile(windowID int) error {
	_, err := c.call('T', strconv.Itoa(windowID))
	return err
}
