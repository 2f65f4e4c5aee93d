package fenconfigs

import (
	"runtime"

	"github.com/reusee/fen/cmds"
	"github.com/reusee/fen/configs"
	"github.com/reusee/fen/vars"
)

// Jobs bounds how many files are tokenized concurrently.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	jobs := vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	)
	if jobs < 1 {
		jobs = 1
	}
	return Jobs(jobs)
}
