package engine

import "context"

// ListVolumes returns every engine-managed volume.
func (c *Client) ListVolumes(ctx context.Context) ([]Volume, error) {
	stdout, _, err := c.runner.Run(ctx, "volume", "ls", "--format", "json")
	if err != nil {
		return nil, err
	}
	return parseLines[Volume](stdout, "list volumes"), nil
}
