package lexconfigs

import (
	"testing"

	"github.com/reusee/decaf/cmds"
	"github.com/reusee/dscope"
)

func TestGetOptionsDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return nil
		},
	).Call(func(
		getOptions GetOptions,
	) {
		options, err := getOptions()
		if err != nil {
			t.Fatal(err)
		}
		if options.MaxErrors != 0 {
			t.Fatalf("got %v", options.MaxErrors)
		}
		if options.Format != FormatText {
			t.Fatalf("got %v", options.Format)
		}
		if !options.ShowPositions {
			t.Fatal()
		}
	})
}

func TestGetOptionsFromFile(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata"}
		},
	).Call(func(
		getOptions GetOptions,
	) {
		options, err := getOptions()
		if err != nil {
			t.Fatal(err)
		}
		if options.MaxErrors != 5 {
			t.Fatalf("got %v", options.MaxErrors)
		}
		if options.Format != FormatJSON {
			t.Fatalf("got %v", options.Format)
		}
		if options.ShowPositions {
			t.Fatal()
		}
	})
}

func TestGetOptionsFlagOverridesFile(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"-max-errors", "0"})
	t.Cleanup(func() {
		cmds.GlobalExecutor.MustExecute([]string{"-max-errors."})
	})
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata"}
		},
	).Call(func(
		getOptions GetOptions,
	) {
		options, err := getOptions()
		if err != nil {
			t.Fatal(err)
		}
		if options.MaxErrors != 0 {
			t.Fatalf("got %v", options.MaxErrors)
		}
		if options.Format != FormatJSON {
			t.Fatalf("got %v", options.Format)
		}
	})
}
