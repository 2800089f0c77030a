package main

import (
	"github.com/reusee/decaf/debugs"
	"github.com/reusee/decaf/lexconfigs"
	"github.com/reusee/decaf/lexing"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Lexing  lexing.Module
	Configs lexconfigs.Module
	Debugs  debugs.Module
}
