package engine

import "context"

// ListNetworks returns every engine-managed network.
func (c *Client) ListNetworks(ctx context.Context) ([]Network, error) {
	stdout, _, err := c.runner.Run(ctx, "network", "ls", "--format", "json")
	if err != nil {
		return nil, err
	}
	return parseLines[Network](stdout, "list networks"), nil
}
