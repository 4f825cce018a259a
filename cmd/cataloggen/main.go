// Command cataloggen writes the built-in item and category catalog out as
// items.json and data.json, as a starting point for a customized game.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/tradewinds/internal/catalog"
)

func main() {
	dir := flag.String("dir", "data", "directory to write items.json and data.json into")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		slog.Error("create dir failed", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	files := []struct {
		name string
		data any
	}{
		{"items.json", cat.Items},
		{"data.json", cat.Categories},
	}

	for _, f := range files {
		path := filepath.Join(*dir, f.name)
		if _, err := os.Stat(path); err == nil && !*force {
			slog.Error("file exists, use -force to overwrite", "path", path)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			slog.Error("encode failed", "file", f.name, "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			slog.Error("write failed", "path", path, "error", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}

	fmt.Printf("catalog: %d items, %d categories\n", len(cat.Items), len(cat.Categories))
}
