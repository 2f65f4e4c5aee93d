package fenconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/fen/cmds"
	"github.com/reusee/fen/configs"
	"github.com/reusee/fen/vars"
)

// HistoryFile is where the REPL keeps its line history. Empty
// disables persistence.
type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history-file")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var fallback string
	if home, err := os.UserHomeDir(); err == nil {
		fallback = filepath.Join(home, ".fen_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFileFlag,
		configs.First[string](loader, "history_file"),
		fallback,
	))
}
