// Package redact removes secrets from diff text before it is sent to
// the inference endpoint.
//
// Detection uses regex heuristics covering common secret shapes: API
// key assignments, AWS access key IDs, bearer tokens, JWTs, private
// key blocks, and GitHub/Slack/OpenAI tokens.
package redact
