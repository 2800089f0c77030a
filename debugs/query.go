package debugs

import (
	"context"

	"github.com/reusee/decaf/lex"
	"github.com/reusee/decaf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Query evaluates a starlark expression with tokens bound to a list of dicts
// holding type, line, column and text.
type Query func(ctx context.Context, expr string, tokens []lex.Token) (starlark.Value, error)

func (Module) Query(
	logger logs.Logger,
) Query {
	return func(ctx context.Context, expr string, tokens []lex.Token) (starlark.Value, error) {
		logger.DebugContext(ctx, "query",
			"expr", expr,
			"tokens", len(tokens),
		)
		env := builtins()
		env["tokens"] = toStarlarkValue(tokens)
		thread := &starlark.Thread{
			Name: "query",
		}
		thread.SetLocal("context", ctx)
		value, err := starlark.EvalOptions(fileOptions, thread, "query", expr, env)
		if err != nil {
			return nil, logs.WrapSource(ctx, err)
		}
		return value, nil
	}
}

func globalsDict(globals map[string]any) starlark.StringDict {
	ret := builtins()
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
