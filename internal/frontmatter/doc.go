// Package frontmatter extracts and validates the YAML header of markdown
// files kept in metadata directories (agents, skills, commands).
//
// # Format
//
//	---
//	name: code-reviewer
//	description: Reviews pull requests for style issues
//	model: sonnet
//	---
//	Body text...
//
// The opening delimiter must be the very first line; the closing delimiter is
// the next line consisting only of "---".
//
// # Validation
//
// A file moves through these stages and stops at the first failure:
//
//  1. missing-start-delimiter
//  2. missing-end-delimiter
//  3. invalid-yaml (syntax error, or the header is not a key-value mapping)
//  4. missing-field (name, description)
//  5. invalid-field (present but not a string, or whitespace-only)
//
// Every failure is an *Error carrying the reason code, so callers can report
// distinct violations without string matching:
//
//	rec, err := frontmatter.Extract(content, path)
//	var fmErr *frontmatter.Error
//	if errors.As(err, &fmErr) {
//	    fmt.Println(fmErr.Reason, fmErr.Message)
//	    return
//	}
//	for _, fe := range frontmatter.Validate(rec, path).Errors {
//	    fmt.Println(fe.Reason, fe.Field, fe.Message)
//	}
package frontmatter
