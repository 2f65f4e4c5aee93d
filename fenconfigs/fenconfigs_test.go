package fenconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fen/configs"
)

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		format DumpFormat,
		jobs Jobs,
	) {
		if format != "text" {
			t.Fatalf("got %v", format)
		}
		if jobs < 1 {
			t.Fatalf("got %v", jobs)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fen.cue")
	content := "format: \"json\"\njobs: 2\nhistory_file: \"/tmp/h\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		format DumpFormat,
		jobs Jobs,
		historyFile HistoryFile,
	) {
		if format != "json" {
			t.Fatalf("got %v", format)
		}
		if jobs != 2 {
			t.Fatalf("got %v", jobs)
		}
		if historyFile != "/tmp/h" {
			t.Fatalf("got %v", historyFile)
		}
	})
}
