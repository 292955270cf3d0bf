// Package gitdiff retrieves working-tree diffs and repository metadata
// by shelling out to git.
package gitdiff
