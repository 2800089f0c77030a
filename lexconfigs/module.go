package lexconfigs

import (
	"github.com/reusee/decaf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
