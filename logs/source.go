package logs

import "context"

type sourceKey struct{}

// WithSource tags ctx with the name of the input being lexed.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sourceKey{}, name)
}

func SourceOf(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(sourceKey{}).(string)
	return name, ok
}
