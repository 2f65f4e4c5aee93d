package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is included by command mains. Providers that
// behave differently under test depend on Mode or *testing.T.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
