package main

import (
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/fen/cmds"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern
			files = append(files, pattern)
		} else {
			for _, path := range paths {
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				if info.IsDir() {
					continue
				}
				files = append(files, path)
			}
		}
	}).Desc("tokenize matching files"))
}

func isTextContent(content []byte) bool {
	mtype := mimetype.Detect(content)
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
