// Package cuesheet renders a markdown rundown of the curated stream cues
// so the host knows when reactions fire and when trivia opens and closes.
package cuesheet

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/reactions"
	"github.com/agentstation/streamscript/pkg/trivia"
)

// DefaultTitle heads the sheet when Sheet.Title is empty.
const DefaultTitle = "Stream Cue Sheet"

// Sheet is the curated material a cue sheet is built from.
type Sheet struct {
	Title     string
	Reactions []reactions.Definition
	Trivia    []trivia.Item
}

// Cue is one row of the timeline.
type Cue struct {
	OffsetMs int64
	Channel  string
	Detail   string
}

// Timeline lists every curated cue ordered by offset. Cues at the same
// offset keep their input order, reactions before trivia.
func (s Sheet) Timeline() []Cue {
	cues := make([]Cue, 0, len(s.Reactions)+2*len(s.Trivia))
	for _, def := range s.Reactions {
		cues = append(cues, Cue{
			OffsetMs: def.OffsetMs,
			Channel:  constants.ChannelReactions,
			Detail:   joinNonEmpty(def.Note, bursts(def.Bursts)),
		})
	}
	for _, it := range s.Trivia {
		cues = append(cues,
			Cue{
				OffsetMs: it.AppearOffsetMs,
				Channel:  constants.ChannelNewPoll,
				Detail:   fmt.Sprintf("#%d %s", it.ID, it.Question),
			},
			Cue{
				OffsetMs: it.RevealOffsetMs,
				Channel:  constants.ChannelPollResults,
				Detail:   fmt.Sprintf("#%d answer: %s", it.ID, answer(it)),
			},
		)
	}
	slices.SortStableFunc(cues, func(a, b Cue) int {
		return cmp.Compare(a.OffsetMs, b.OffsetMs)
	})
	return cues
}

// Render writes the sheet as markdown.
func (s Sheet) Render(w io.Writer) error {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	doc := md.NewMarkdown(w)
	doc.H1(title).LF()
	doc.PlainTextf("%d reaction cues, %d trivia questions.", len(s.Reactions), len(s.Trivia)).LF()

	doc.H2("Timeline").LF()
	rows := [][]string{}
	for _, c := range s.Timeline() {
		rows = append(rows, []string{FormatOffset(c.OffsetMs), ChannelLabel(c.Channel), c.Detail})
	}
	doc.Table(md.TableSet{
		Header: []string{"Time", "Cue", "Detail"},
		Rows:   rows,
	}).LF()

	if len(s.Trivia) > 0 {
		doc.H2("Trivia").LF()
		items := slices.Clone(s.Trivia)
		slices.SortStableFunc(items, func(a, b trivia.Item) int {
			return cmp.Compare(a.AppearOffsetMs, b.AppearOffsetMs)
		})
		for _, it := range items {
			doc.H3(fmt.Sprintf("#%d %s", it.ID, it.Question)).LF()
			doc.PlainTextf("Open %s, reveal %s, worth %d points.",
				FormatOffset(it.AppearOffsetMs), FormatOffset(it.RevealOffsetMs), it.Points).LF()
			options := make([]string, 0, len(it.Options))
			for i, opt := range it.Options {
				if i == it.CorrectOptionIndex {
					opt = md.Bold(opt) + " (correct)"
				}
				options = append(options, opt)
			}
			doc.OrderedList(options...).LF()
			if it.Note != "" {
				doc.Blockquote(it.Note).LF()
			}
		}
	}

	if err := doc.Build(); err != nil {
		return fmt.Errorf("writing cue sheet: %w", err)
	}
	return nil
}

// FormatOffset renders a millisecond offset as mm:ss.mmm.
func FormatOffset(ms int64) string {
	sign := ""
	if ms < 0 {
		sign, ms = "-", -ms
	}
	return fmt.Sprintf("%s%02d:%02d.%03d", sign, ms/60000, ms/1000%60, ms%1000)
}

// ChannelLabel turns a channel name such as "game.new-poll" into "New Poll".
func ChannelLabel(channel string) string {
	name := channel
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func bursts(bs []reactions.Burst) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, fmt.Sprintf("%s×%d", b.Emoji, b.Repeat))
	}
	return strings.Join(parts, " ")
}

func answer(it trivia.Item) string {
	if it.CorrectOptionIndex < 0 || it.CorrectOptionIndex >= len(it.Options) {
		return fmt.Sprintf("option %d", it.CorrectOptionID())
	}
	return it.Options[it.CorrectOptionIndex]
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ": ")
}
