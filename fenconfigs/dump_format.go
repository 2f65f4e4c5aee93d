package fenconfigs

import (
	"github.com/reusee/fen/cmds"
	"github.com/reusee/fen/configs"
	"github.com/reusee/fen/vars"
)

// DumpFormat selects how tokens are printed, "text" or "json".
type DumpFormat string

var formatFlag = cmds.Var[string]("-format")

func (Module) DumpFormat(
	loader configs.Loader,
) DumpFormat {
	return DumpFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "format"),
		"text",
	))
}
