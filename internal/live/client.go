package live

import "time"

// Buffer size for outgoing messages
const sendBufferSize = 64

// Client is one subscriber to a hub
type Client struct {
	name        string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new Client
func NewClient(name string) *Client {
	return &Client{
		name:        name,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// Messages returns the channel of outgoing messages. It is closed when the
// client is unregistered or the hub shuts down.
func (c *Client) Messages() <-chan []byte {
	return c.send
}
