// clean-check walks a folder and prints the canonical name the pipeline
// would produce for every audio file, without renaming anything. Handy
// for eyeballing the cleaning rules against a real library.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mydehq/tunetidy/internal/namer"
	"github.com/mydehq/tunetidy/internal/renamer"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !renamer.IsAudio(path) {
			return nil
		}

		filename := filepath.Base(path)
		artist, title := namer.Parse(filename)
		newName, ok := namer.Generate(artist, title, filepath.Ext(filename))
		if !ok {
			newName = "(cannot determine name)"
		}
		fmt.Printf("File: %s\nWould be: %s\n\n", filename, newName)
		return nil
	})

	if err != nil {
		fmt.Printf("Error walking path: %v\n", err)
		os.Exit(1)
	}
}
