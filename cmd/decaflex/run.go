package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/decaf/debugs"
	"github.com/reusee/decaf/lexconfigs"
	"github.com/reusee/decaf/lexing"
	"github.com/reusee/decaf/logs"
	"github.com/samber/lo"
)

type RunArgs struct {
	Files  []string
	Query  string
	Tap    bool
	Stdout io.Writer
	Stderr io.Writer
}

// Run lexes every file in turn. It reports ok=false when any diagnostic was
// printed; err is reserved for failures of the run itself.
type Run func(ctx context.Context, args RunArgs) (ok bool, err error)

func (Module) Run(
	getOptions lexconfigs.GetOptions,
	lexFile lexing.LexFile,
	query debugs.Query,
	tap debugs.Tap,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, args RunArgs) (ok bool, err error) {
		options, err := getOptions()
		if err != nil {
			return false, err
		}

		ok = true
		for _, file := range args.Files {
			result, err := lexFile(ctx, file, options.MaxErrors)
			for _, d := range result.Diagnostics {
				fmt.Fprintln(args.Stderr, d)
			}
			if len(result.Diagnostics) > 0 {
				ok = false
			}
			if err != nil {
				// unreadable input, go on with the next one
				logger.WarnContext(ctx, "skip input", "file", file, "error", err)
				if len(result.Diagnostics) == 0 {
					fmt.Fprintf(args.Stderr, "%s: %v\n", file, err)
				}
				ok = false
				continue
			}
			if result.Truncated {
				fmt.Fprintf(args.Stderr, "%s: too many errors\n", file)
			}

			switch {

			case args.Query != "":
				value, err := query(logs.WithSource(ctx, file), args.Query, result.Tokens)
				if err != nil {
					fmt.Fprintln(args.Stderr, err)
					ok = false
					continue
				}
				fmt.Fprintln(args.Stdout, value)

			case args.Tap:
				diagnostics := lo.Map(result.Diagnostics, func(d lexing.Diagnostic, _ int) string {
					return d.String()
				})
				tap(ctx, file, map[string]any{
					"tokens":      result.Tokens,
					"diagnostics": diagnostics,
				})

			case options.Format == lexconfigs.FormatJSON:
				if err := lexing.PrintJSON(args.Stdout, file, result.Tokens, options.ShowPositions); err != nil {
					return false, err
				}

			default:
				if err := lexing.PrintText(args.Stdout, result.Tokens, options.ShowPositions); err != nil {
					return false, err
				}

			}
		}

		return ok, nil
	}
}
