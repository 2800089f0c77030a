package lexconfigs

import (
	"fmt"
	"sync"

	"github.com/reusee/decaf/cmds"
	"github.com/reusee/decaf/configs"
	"github.com/reusee/decaf/logs"
	"github.com/reusee/e5"
	"github.com/samber/lo"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	maxErrorsFlag = cmds.Var[*int]("-max-errors", "stop an input after this many token errors, 0 for no limit")
	jsonFlag      = cmds.Switch("-json", "print tokens as JSON lines")
	noPosFlag     = cmds.Switch("-no-pos", "do not print token positions")
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Options is the resolved output configuration of one run. Flags override
// config files.
type Options struct {
	// MaxErrors bounds the invalid token errors reported per input, zero
	// means no limit
	MaxErrors     int
	Format        OutputFormat
	ShowPositions bool
}

type GetOptions func() (Options, error)

func (Module) GetOptions(
	loader configs.Loader,
	logger logs.Logger,
) GetOptions {
	return sync.OnceValues(func() (ret Options, err error) {
		defer func() {
			if err == nil {
				logger.Debug("options",
					"max_errors", ret.MaxErrors,
					"format", ret.Format,
					"show_positions", ret.ShowPositions,
				)
			}
		}()

		maxErrors, err := configs.First[int](loader, "max_errors")
		if err != nil {
			return ret, wrap(err)
		}
		ret.MaxErrors = maxErrors
		if *maxErrorsFlag != nil {
			ret.MaxErrors = **maxErrorsFlag
		}
		if ret.MaxErrors < 0 {
			return ret, fmt.Errorf("negative max errors: %d", ret.MaxErrors)
		}

		format, err := configs.First[string](loader, "format")
		if err != nil {
			return ret, wrap(err)
		}
		if *jsonFlag {
			format = string(FormatJSON)
		}
		ret.Format = OutputFormat(lo.CoalesceOrEmpty(format, string(FormatText)))
		switch ret.Format {
		case FormatText, FormatJSON:
		default:
			return ret, fmt.Errorf("unknown format: %s", ret.Format)
		}

		ret.ShowPositions = true
		for show, err := range configs.All[bool](loader, "show_positions") {
			if err != nil {
				return ret, wrap(err)
			}
			ret.ShowPositions = show
			break
		}
		if *noPosFlag {
			ret.ShowPositions = false
		}

		return ret, nil
	})
}
