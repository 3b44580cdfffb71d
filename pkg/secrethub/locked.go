package secrethub

import "github.com/awnumar/memguard"

// ReadLocked reads the value of the secret at path into a memguard buffer.
// The caller must Destroy the buffer. The intermediate byte copy is wiped.
func (c *Client) ReadLocked(path string) (*memguard.LockedBuffer, error) {
	value, err := c.ReadString(path)
	if err != nil {
		return nil, err
	}
	return memguard.NewBufferFromBytes([]byte(value)), nil
}
