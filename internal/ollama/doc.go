// Package ollama implements the inference client for a local Ollama
// server.
//
// The /api/generate route answers with newline-delimited JSON objects
// even for stream=false requests; that protocol quirk is part of the
// endpoint's contract and the client always parses line-delimited
// output. Setting DEBUG=TRUE dumps the raw HTTP status and body to
// stderr before parsing.
package ollama
