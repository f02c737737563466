package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/agentstation/streamscript"
	"github.com/agentstation/streamscript/pkg/cuesheet"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/events"
)

// ResultsData converts generation results to table format.
func ResultsData(results []*streamscript.Result) Data {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Table,
			r.Path,
			r.Source,
			strconv.Itoa(r.Curated),
			strconv.Itoa(r.Filler),
			strconv.Itoa(r.Total),
		})
	}
	return Data{
		Headers:         []string{"Table", "Path", "Source", "Curated", "Filler", "Total"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight},
		Source:          results,
	}
}

// SummaryData converts per-channel summaries to table format.
func SummaryData(summaries []events.ChannelSummary) Data {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			cuesheet.ChannelLabel(s.Channel),
			s.Channel,
			strconv.Itoa(s.Events),
			strconv.Itoa(s.Publishes),
			cuesheet.FormatOffset(s.FirstOffset),
			cuesheet.FormatOffset(s.LastOffset),
		})
	}
	return Data{
		Headers:         []string{"Cue", "Channel", "Events", "Publishes", "First", "Last"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight},
		Source:          summaries,
	}
}

// EventsData converts an event list to table format, one row per event.
func EventsData(evs []events.TimedEvent) Data {
	rows := make([][]string, 0, len(evs))
	for _, ev := range evs {
		repeat := ""
		if ev.Repeat != 0 {
			repeat = strconv.Itoa(ev.Repeat)
		}
		rows = append(rows, []string{
			cuesheet.FormatOffset(ev.OffsetMs),
			ev.Action.Channel,
			payloadSummary(ev.Action.Data),
			repeat,
		})
	}
	if evs == nil {
		evs = []events.TimedEvent{}
	}
	return Data{
		Headers:         []string{"Time", "Channel", "Data", "Repeat"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignRight},
		Source:          evs,
	}
}

// FindingsData converts lint findings to table format.
func FindingsData(findings []*errors.ValidationError) Data {
	rows := make([][]string, 0, len(findings))
	source := make([]map[string]any, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{f.Field, fmt.Sprintf("%v", f.Value), f.Message})
		source = append(source, map[string]any{
			"field":   f.Field,
			"value":   f.Value,
			"message": f.Message,
		})
	}
	return Data{
		Headers: []string{"Field", "Value", "Problem"},
		Rows:    rows,
		Source:  source,
	}
}

func payloadSummary(data any) string {
	switch p := data.(type) {
	case events.ReactionPayload:
		return p.Text
	case events.PollPayload:
		return fmt.Sprintf("#%d %s (%d options, %d pts)", p.ID, p.Title, len(p.Options), p.VictoryPoints)
	case events.PollResultPayload:
		return fmt.Sprintf("#%d correct option %d", p.ID, p.CorrectOption)
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Sprintf("%v", p)
		}
		return string(b)
	}
}
