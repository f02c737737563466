package events

import (
	"slices"
	"strings"
)

// ChannelSummary aggregates the events of one channel.
type ChannelSummary struct {
	Channel     string `json:"channel" yaml:"channel"`
	Events      int    `json:"events" yaml:"events"`
	Publishes   int    `json:"publishes" yaml:"publishes"`
	FirstOffset int64  `json:"first_offset_ms" yaml:"first_offset_ms"`
	LastOffset  int64  `json:"last_offset_ms" yaml:"last_offset_ms"`
}

// Summarize groups events by channel. Publishes counts each event Repeat
// times (once when Repeat is unset). Channels are returned in name order.
func Summarize(evs []TimedEvent) []ChannelSummary {
	byChannel := make(map[string]*ChannelSummary)
	for _, ev := range evs {
		s, ok := byChannel[ev.Action.Channel]
		if !ok {
			s = &ChannelSummary{
				Channel:     ev.Action.Channel,
				FirstOffset: ev.OffsetMs,
				LastOffset:  ev.OffsetMs,
			}
			byChannel[ev.Action.Channel] = s
		}
		s.Events++
		s.Publishes += max(ev.Repeat, 1)
		s.FirstOffset = min(s.FirstOffset, ev.OffsetMs)
		s.LastOffset = max(s.LastOffset, ev.OffsetMs)
	}

	out := make([]ChannelSummary, 0, len(byChannel))
	for _, s := range byChannel {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b ChannelSummary) int {
		return strings.Compare(a.Channel, b.Channel)
	})
	return out
}
