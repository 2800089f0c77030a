package logs

import (
	"context"
	"fmt"
)

// WrapSource prefixes err with the source name carried by ctx.
func WrapSource(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	name, ok := SourceOf(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%s: %w", name, err)
}
