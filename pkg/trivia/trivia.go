// Package trivia expands curated trivia questions into poll events: one
// announcing the question and one revealing the answer.
package trivia

import (
	"github.com/agentstation/streamscript/pkg/events"
)

// Item is a curated trivia question.
type Item struct {
	ID                 int      `yaml:"id" json:"id"`
	Question           string   `yaml:"question" json:"question"`
	Options            []string `yaml:"options" json:"options"`
	CorrectOptionIndex int      `yaml:"correct_option_index" json:"correct_option_index"`
	Points             int      `yaml:"points" json:"points"`
	AppearOffsetMs     int64    `yaml:"appear_time_ms" json:"appear_time_ms"`
	RevealOffsetMs     int64    `yaml:"reveal_time_ms" json:"reveal_time_ms"`
	Note               string   `yaml:"note,omitempty" json:"note,omitempty"`
}

// CorrectOptionID is the 1-based option ID published in the reveal event.
func (it Item) CorrectOptionID() int {
	return it.CorrectOptionIndex + 1
}

// Events returns the appear and reveal events of the item.
func (it Item) Events() (appear, reveal events.TimedEvent) {
	appear = events.NewPoll(it.AppearOffsetMs, it.ID, it.Question, it.Points, it.Options)
	reveal = events.NewPollResult(it.RevealOffsetMs, it.ID, it.CorrectOptionID())
	return appear, reveal
}

// Build expands every item into its two events and sorts them by offset.
// Items are not checked: an out-of-range CorrectOptionIndex or a reveal
// scheduled before the question ends up in the table as written.
func Build(items []Item) []events.TimedEvent {
	out := make([]events.TimedEvent, 0, 2*len(items))
	for _, it := range items {
		appear, reveal := it.Events()
		out = append(out, appear, reveal)
	}
	events.Sort(out)
	return out
}
