// Redline reviews local source changes with a locally hosted Ollama
// model.
//
// It collects the git diff of the current directory, samples the
// surrounding codebase for context, sends both to the Ollama
// /api/generate endpoint, and prints the model's review.
//
// Usage:
//
//	redline                    # review working-tree changes
//	redline --staged           # review staged changes
//	redline --model llama3     # override the model for one run
//	redline config init        # write a default config.toml
//	redline version            # print version information
//
// Configuration is read from config.toml (or config) in the working
// directory; OLLAMA_HOST and REDLINE_MODEL override it. DEBUG=TRUE
// dumps the raw endpoint response to stderr.
package main
