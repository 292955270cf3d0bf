package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redline-cli/redline/internal/scan"
)

func TestBuildPrompt_Shape(t *testing.T) {
	diff := "diff --git a/main.go b/main.go\n+func added() {}"
	snap := scan.Snapshot{"main.go": "package main\n"}

	prompt := BuildPrompt(diff, snap, 5)

	assert.True(t, strings.HasPrefix(prompt, "As a code reviewer, analyze the following changes:\n\n```diff\n"))
	assert.Contains(t, prompt, diff)
	assert.Contains(t, prompt, "Relevant files from the codebase for context:\n\n")
	assert.Contains(t, prompt, "main.go:\n```\npackage main\n```\n\n")
	assert.True(t, strings.HasSuffix(prompt, checklist))
}

func TestBuildPrompt_Checklist(t *testing.T) {
	prompt := BuildPrompt("", nil, 5)

	for _, item := range []string{
		"1. Potential bugs or issues",
		"2. Code style and best practices",
		"3. Performance implications",
		"4. Security considerations",
		"5. Suggestions for improvement",
	} {
		assert.Contains(t, prompt, item)
	}
}

func TestBuildPrompt_LimitsFiles(t *testing.T) {
	snap := scan.Snapshot{}
	for _, name := range []string{"a.go", "b.go", "c.go", "d.go", "e.go", "f.go", "g.go"} {
		snap[name] = "package x\n"
	}

	prompt := BuildPrompt("some diff", snap, 5)

	// One fenced pair for the diff, one per embedded file.
	fences := strings.Count(prompt, "```")
	assert.Equal(t, 2+2*5, fences, "at most maxFiles file blocks are embedded")
}

func TestBuildPrompt_ZeroFiles(t *testing.T) {
	snap := scan.Snapshot{"a.go": "package a\n"}

	prompt := BuildPrompt("some diff", snap, 0)
	assert.NotContains(t, prompt, "a.go:")
	assert.Contains(t, prompt, "Relevant files from the codebase for context:")
}

func TestBuildPrompt_NoTruncation(t *testing.T) {
	big := strings.Repeat("x", 1<<20)
	snap := scan.Snapshot{"big.txt": big}

	prompt := BuildPrompt("d", snap, 1)
	assert.Contains(t, prompt, big, "file contents are embedded whole")
}
