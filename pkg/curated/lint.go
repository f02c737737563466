package curated

import (
	"fmt"

	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/trivia"
)

// LintReactions reports definitions the consumer would play back wrongly.
// Offsets are checked against [0, durationMs]; a non-positive durationMs
// skips the range check.
func LintReactions(defs []reactions.Definition, durationMs int64) []*errors.ValidationError {
	var out []*errors.ValidationError
	for i, def := range defs {
		field := fmt.Sprintf("reactions[%d]", i)
		if msg := offsetProblem(def.OffsetMs, durationMs); msg != "" {
			out = append(out, errors.NewValidationError(field+".offset_ms", def.OffsetMs, msg))
		}
		if len(def.Bursts) == 0 {
			out = append(out, errors.NewValidationError(field+".reactions", nil, "no reactions listed"))
		}
		for j, b := range def.Bursts {
			bf := fmt.Sprintf("%s.reactions[%d]", field, j)
			if b.Emoji == "" {
				out = append(out, errors.NewValidationError(bf+".emoji", b.Emoji, "emoji is empty"))
			}
			if b.Repeat < 1 {
				out = append(out, errors.NewValidationError(bf+".repeat", b.Repeat, "repeat must be at least 1"))
			}
		}
	}
	return out
}

// LintTrivia reports items whose events would be inconsistent: an answer
// that is not one of the options, a reveal that does not follow the
// question, offsets outside the video or a reused poll ID.
func LintTrivia(items []trivia.Item, durationMs int64) []*errors.ValidationError {
	var out []*errors.ValidationError
	seen := make(map[int]int, len(items))
	for i, it := range items {
		field := fmt.Sprintf("trivia[%d]", i)
		if prev, ok := seen[it.ID]; ok {
			out = append(out, errors.NewValidationError(field+".id", it.ID,
				fmt.Sprintf("id already used by trivia[%d]", prev)))
		} else {
			seen[it.ID] = i
		}
		if len(it.Options) == 0 {
			out = append(out, errors.NewValidationError(field+".options", nil, "no options listed"))
		}
		if it.CorrectOptionIndex < 0 || it.CorrectOptionIndex >= len(it.Options) {
			out = append(out, errors.NewValidationError(field+".correct_option_index", it.CorrectOptionIndex,
				fmt.Sprintf("index out of range for %d options", len(it.Options))))
		}
		if it.AppearOffsetMs >= it.RevealOffsetMs {
			out = append(out, errors.NewValidationError(field+".reveal_time_ms", it.RevealOffsetMs,
				fmt.Sprintf("reveal must come after appear (%d)", it.AppearOffsetMs)))
		}
		if msg := offsetProblem(it.AppearOffsetMs, durationMs); msg != "" {
			out = append(out, errors.NewValidationError(field+".appear_time_ms", it.AppearOffsetMs, msg))
		}
		if msg := offsetProblem(it.RevealOffsetMs, durationMs); msg != "" {
			out = append(out, errors.NewValidationError(field+".reveal_time_ms", it.RevealOffsetMs, msg))
		}
	}
	return out
}

func offsetProblem(offset, durationMs int64) string {
	switch {
	case offset < 0:
		return "offset is negative"
	case durationMs > 0 && offset > durationMs:
		return fmt.Sprintf("offset is past the end of the video (%d ms)", durationMs)
	}
	return ""
}
