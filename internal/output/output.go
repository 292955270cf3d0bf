package output

import (
	"fmt"
	"io"
	"os"
)

// Banner precedes the review text. The leading newline separates it
// from any warnings already on the terminal.
const Banner = "\nCode Review Results:"

// Write prints the banner and review text to stdout, or to outPath
// when one is given.
func Write(text, outPath string) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return WriteTo(w, text)
}

// WriteTo writes the banner and review text to w.
func WriteTo(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, Banner); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
