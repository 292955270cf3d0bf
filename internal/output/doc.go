// Package output writes the finished review to stdout or a file.
package output
