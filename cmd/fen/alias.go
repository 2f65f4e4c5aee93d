package main

import (
	"fmt"

	"github.com/reusee/e5"
)

var (
	pt   = fmt.Printf
	ce   = e5.Check.With(e5.WrapStacktrace)
	wrap = e5.Wrap.With(e5.WrapStacktrace)
)
