// Package files groups the filesystem-facing building blocks of repoguard.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Tree walker with name-based directory exclusion and text reading
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/repoguard/internal/files/scanner"
//	    "github.com/vvka-141/repoguard/internal/rules"
//	)
//
//	s := scanner.NewScanner(rules.DefaultExclusions())
//	err := s.Walk(".", func(e scanner.FileEntry) error {
//	    fmt.Println(e.RelativePath, e.SizeBytes)
//	    return nil
//	})
package files
