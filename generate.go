//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/streamscript --repository.default-branch master --repository.path /

// Package streamscript generates the timed-event tables that script a
// recorded live-shopping stream: emoji reactions and trivia polls keyed
// by their offset from the start of the video.
package streamscript
