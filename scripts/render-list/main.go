package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tasklist-widget/internal/model"
	"tasklist-widget/internal/ordering"
	"tasklist-widget/pkg/listpdf"
)

// Renders a list of labels, optionally sorted, to a PDF without starting the API.
func main() {
	out := flag.String("o", "tasks.pdf", "output file")
	sortDir := flag.String("sort", "", "ascending, descending or empty for insertion order")
	title := flag.String("title", "To-do list", "document title")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: go run scripts/render-list/main.go [-o tasks.pdf] [-sort ascending|descending] <label>...")
		fmt.Println("Example: go run scripts/render-list/main.go -sort descending 3 1 2")
		os.Exit(1)
	}

	engine := ordering.New()
	for _, label := range flag.Args() {
		if _, err := engine.AddTask(label); err != nil {
			fmt.Printf("Skipping %q: %v\n", label, err)
		}
	}

	switch model.SortDirection(*sortDir) {
	case "":
	case model.SortAscending:
		engine.ToggleSortDirection()
	case model.SortDescending:
		engine.ToggleSortDirection()
		engine.ToggleSortDirection()
	default:
		fmt.Printf("Unknown sort direction %q\n", *sortDir)
		os.Exit(1)
	}

	var items []string
	for _, t := range engine.CurrentOrder() {
		items = append(items, t.Label)
		fmt.Println(t.Label)
	}

	content, err := listpdf.New("A4").Render(listpdf.Document{
		Title:     *title,
		Items:     items,
		CreatedAt: time.Now(),
	})
	if err != nil {
		fmt.Printf("Failed to render: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		fmt.Printf("Failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d task(s) to %s\n", len(items), *out)
}
