// Package events defines the timed-event record shared by every generated
// table and the chronological merge applied before serialization.
//
// A TimedEvent fires at OffsetMs milliseconds after the stream video starts;
// the backend publishes Action.Data on Action.Channel, Repeat times when set.
package events

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/agentstation/streamscript/pkg/constants"
)

// TimedEvent is one entry of a generated table.
type TimedEvent struct {
	OffsetMs int64  `json:"timeSinceVideoStartedInMs" yaml:"timeSinceVideoStartedInMs"`
	Persist  bool   `json:"persistInHistory" yaml:"persistInHistory"`
	Action   Action `json:"action" yaml:"action"`
	Repeat   int    `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// Action names the channel an event is published on and its payload.
// Data holds one of the payload types of this package, or json.RawMessage
// for channels this package does not know.
type Action struct {
	Channel string `json:"channel" yaml:"channel"`
	Data    any    `json:"data" yaml:"data"`
}

// ReactionPayload is published on constants.ChannelReactions.
type ReactionPayload struct {
	Text string `json:"text" yaml:"text"`
	Type string `json:"type" yaml:"type"`
}

// PollOption is one answer of a trivia question. IDs start at 1.
type PollOption struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// PollPayload announces a trivia question on constants.ChannelNewPoll.
type PollPayload struct {
	ID            int          `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	VictoryPoints int          `json:"victoryPoints" yaml:"victoryPoints"`
	PollType      string       `json:"pollType" yaml:"pollType"`
	Options       []PollOption `json:"options" yaml:"options"`
}

// PollResultPayload reveals the correct option on constants.ChannelPollResults.
type PollResultPayload struct {
	ID            int    `json:"id" yaml:"id"`
	CorrectOption int    `json:"correctOption" yaml:"correctOption"`
	PollType      string `json:"pollType" yaml:"pollType"`
}

// NewReaction builds a non-persistent reaction event.
func NewReaction(offsetMs int64, glyph string, repeat int) TimedEvent {
	return TimedEvent{
		OffsetMs: offsetMs,
		Action: Action{
			Channel: constants.ChannelReactions,
			Data:    ReactionPayload{Text: glyph, Type: constants.ReactionType},
		},
		Repeat: repeat,
	}
}

// NewPoll builds the event announcing a trivia question. Option IDs are
// assigned from the option position, starting at 1.
func NewPoll(offsetMs int64, id int, title string, points int, options []string) TimedEvent {
	opts := make([]PollOption, 0, len(options))
	for i, text := range options {
		opts = append(opts, PollOption{ID: i + 1, Text: text})
	}
	return TimedEvent{
		OffsetMs: offsetMs,
		Action: Action{
			Channel: constants.ChannelNewPoll,
			Data: PollPayload{
				ID:            id,
				Title:         title,
				VictoryPoints: points,
				PollType:      constants.PollTypeSide,
				Options:       opts,
			},
		},
	}
}

// NewPollResult builds the event revealing the answer of a trivia question.
// correctOption is the 1-based option ID.
func NewPollResult(offsetMs int64, id int, correctOption int) TimedEvent {
	return TimedEvent{
		OffsetMs: offsetMs,
		Action: Action{
			Channel: constants.ChannelPollResults,
			Data: PollResultPayload{
				ID:            id,
				CorrectOption: correctOption,
				PollType:      constants.PollTypeSide,
			},
		},
	}
}

// UnmarshalJSON decodes data into the payload type registered for the channel.
func (a *Action) UnmarshalJSON(b []byte) error {
	var raw struct {
		Channel string          `json:"channel"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	a.Channel = raw.Channel
	switch raw.Channel {
	case constants.ChannelReactions:
		var p ReactionPayload
		if err := json.Unmarshal(raw.Data, &p); err != nil {
			return err
		}
		a.Data = p
	case constants.ChannelNewPoll:
		var p PollPayload
		if err := json.Unmarshal(raw.Data, &p); err != nil {
			return err
		}
		if p.Options == nil {
			p.Options = []PollOption{}
		}
		a.Data = p
	case constants.ChannelPollResults:
		var p PollResultPayload
		if err := json.Unmarshal(raw.Data, &p); err != nil {
			return err
		}
		a.Data = p
	default:
		a.Data = raw.Data
	}
	return nil
}

// Sort orders events by OffsetMs, keeping insertion order for equal offsets.
func Sort(evs []TimedEvent) {
	slices.SortStableFunc(evs, func(a, b TimedEvent) int {
		return cmp.Compare(a.OffsetMs, b.OffsetMs)
	})
}

// Merge concatenates the groups in order and sorts the result.
// The inputs are not modified.
func Merge(groups ...[]TimedEvent) []TimedEvent {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	merged := make([]TimedEvent, 0, n)
	for _, g := range groups {
		merged = append(merged, g...)
	}
	Sort(merged)
	return merged
}

// IsSorted reports whether offsets are non-decreasing.
func IsSorted(evs []TimedEvent) bool {
	return slices.IsSortedFunc(evs, func(a, b TimedEvent) int {
		return cmp.Compare(a.OffsetMs, b.OffsetMs)
	})
}
