package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fen/debugs"
	"github.com/reusee/fen/fenconfigs"
	"github.com/reusee/fen/logs"
)

type Module struct {
	dscope.Module
	Configs fenconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
