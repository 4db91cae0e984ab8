package engine

import (
	"context"
)

// ListImages returns every locally stored image.
func (c *Client) ListImages(ctx context.Context, filters ...string) ([]Image, error) {
	args := []string{"images", "--format", "json"}
	for _, f := range filters {
		args = append(args, "--filter", f)
	}
	stdout, _, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLines[Image](stdout, "list images"), nil
}

// PullImage pulls an image from a registry.
func (c *Client) PullImage(ctx context.Context, ref string) error {
	if err := ValidateImageRef(ref); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "pull", ref)
	return err
}

// PushImage pushes an image to a registry.
func (c *Client) PushImage(ctx context.Context, ref string) error {
	if err := ValidateImageRef(ref); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "push", ref)
	return err
}

// RemoveImage removes a local image.
func (c *Client) RemoveImage(ctx context.Context, ref string) error {
	_, _, err := c.runner.Run(ctx, "rmi", ref)
	return err
}

// BuildImage builds an image from a build context directory.
func (c *Client) BuildImage(ctx context.Context, tag, path string) error {
	if err := ValidateImageRef(tag); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "build", "-t", tag, path)
	return err
}

// TagImage creates a new tag pointing at an existing image.
func (c *Client) TagImage(ctx context.Context, src, dst string) error {
	if err := ValidateImageRef(dst); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "tag", src, dst)
	return err
}

// ImageHistory shows the layer history of an image.
func (c *Client) ImageHistory(ctx context.Context, ref string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "history", ref)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// ImportImage creates an image from a filesystem tarball. ref may be empty
// to import without naming the result.
func (c *Client) ImportImage(ctx context.Context, file, ref string) error {
	args := []string{"import", file}
	if ref != "" {
		if err := ValidateImageRef(ref); err != nil {
			return err
		}
		args = append(args, ref)
	}
	_, _, err := c.runner.Run(ctx, args...)
	return err
}

// LoadImage restores images from a tar archive produced by SaveImage.
func (c *Client) LoadImage(ctx context.Context, file string) error {
	_, _, err := c.runner.Run(ctx, "load", "-i", file)
	return err
}

// SaveImage writes an image with all its layers to a tar archive.
func (c *Client) SaveImage(ctx context.Context, ref, output string) error {
	_, _, err := c.runner.Run(ctx, "save", "-o", output, ref)
	return err
}
