// Package frontkit provides maintenance tooling for a web front-end project.
//
// The root package holds the dictionary-based document translator. Pages are
// rewritten by the rewrite package.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/frontkit"
//	    "github.com/ZaguanLabs/frontkit/processor"
//	    "github.com/ZaguanLabs/frontkit/storage"
//	)
//
//	func main() {
//	    dict, err := frontkit.DefaultDictionary()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t := frontkit.NewTranslator(dict,
//	        frontkit.WithProcessor(processor.NewTextProcessor()),
//	    )
//
//	    report, err := t.TranslateDocument(context.Background(), storage.New("."),
//	        frontkit.DocumentJob{Input: "Agents.md", Output: "Agents.md.new"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%.1f%%\n", report.Reduction())
//	}
package frontkit
