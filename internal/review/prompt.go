package review

import (
	"fmt"
	"strings"

	"github.com/redline-cli/redline/internal/scan"
)

// checklist is the fixed closing instruction for every review prompt.
const checklist = "\nPlease provide a detailed code review focusing on:\n" +
	"1. Potential bugs or issues\n" +
	"2. Code style and best practices\n" +
	"3. Performance implications\n" +
	"4. Security considerations\n" +
	"5. Suggestions for improvement"

// BuildPrompt assembles the reviewer prompt: the diff fenced as a code
// block, at most maxFiles snapshot entries fenced after it, then the
// fixed review checklist.
//
// Which snapshot entries make the cut is whatever map iteration
// yields. The sample is intentionally unsorted and can differ between
// runs on the same tree. File contents are embedded whole, without
// truncation.
func BuildPrompt(diff string, snapshot scan.Snapshot, maxFiles int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As a code reviewer, analyze the following changes:\n\n```diff\n%s\n```\n\n", diff)

	b.WriteString("Relevant files from the codebase for context:\n\n")
	n := 0
	for path, content := range snapshot {
		if n >= maxFiles {
			break
		}
		fmt.Fprintf(&b, "%s:\n```\n%s\n```\n\n", path, content)
		n++
	}

	b.WriteString(checklist)
	return b.String()
}
