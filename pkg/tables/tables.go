// Package tables serializes timed events into the two module shapes the
// stream backend loads, and reads generated modules back into events.
package tables

import (
	"encoding/json"
	"fmt"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
	"github.com/agentstation/streamscript/pkg/events"
	"github.com/agentstation/streamscript/pkg/jsmodule"
)

// Shape is the source layout of a generated module.
type Shape int

const (
	// ShapeLiteral renders JavaScript object literals, one multi-line object per event.
	ShapeLiteral Shape = iota
	// ShapeJSON renders the JSON encoding of the event list.
	ShapeJSON
)

// String returns the shape name.
func (s Shape) String() string {
	if s == ShapeJSON {
		return "json"
	}
	return "literal"
}

// Table describes one generated module.
type Table struct {
	Name   string
	Export string
	Shape  Shape
	Header []string
}

// Reactions is the reactions table layout.
var Reactions = Table{
	Name:   "reactions",
	Export: constants.ReactionsExport,
	Shape:  ShapeLiteral,
	Header: []string{
		"Generated by streamscript generate reactions",
		"Contains timed and random reactions for the live shopping experience.",
	},
}

// Trivia is the trivia table layout.
var Trivia = Table{
	Name:   "trivia",
	Export: constants.TriviaExport,
	Shape:  ShapeJSON,
}

// All lists the known tables.
var All = []Table{Reactions, Trivia}

// Module builds the module tree for evs.
func (t Table) Module(evs []events.TimedEvent) jsmodule.Module {
	m := jsmodule.Module{Header: t.Header, Name: t.Export}
	if t.Shape == ShapeJSON {
		if evs == nil {
			evs = []events.TimedEvent{}
		}
		m.Value = jsmodule.JSON{Value: evs}
		return m
	}

	list := make(jsmodule.Array, 0, len(evs))
	for _, ev := range evs {
		list = append(list, eventNode(ev))
	}
	m.Value = list
	return m
}

// Render returns the module source for evs.
func (t Table) Render(evs []events.TimedEvent) ([]byte, error) {
	b, err := t.Module(evs).Bytes()
	if err != nil {
		return nil, fmt.Errorf("rendering %s table: %w", t.Name, err)
	}
	return b, nil
}

// Parse evaluates a generated module and decodes its export into events.
func (t Table) Parse(filename string, src []byte) ([]events.TimedEvent, error) {
	value, err := jsmodule.Eval(filename, src, t.Export)
	if err != nil {
		return nil, err
	}

	// route through JSON so payloads decode by channel
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.WrapParse("js", filename, err)
	}
	var evs []events.TimedEvent
	if err := json.Unmarshal(raw, &evs); err != nil {
		return nil, errors.NewParseError("js", filename, "export "+t.Export+" is not a list of timed events", err)
	}
	return evs, nil
}

// Detect parses src with the first known table whose export it defines.
func Detect(filename string, src []byte) (Table, []events.TimedEvent, error) {
	for _, t := range All {
		evs, err := t.Parse(filename, src)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return Table{}, nil, err
		}
		return t, evs, nil
	}
	return Table{}, nil, errors.NewNotFoundError("table export", filename)
}

func eventNode(ev events.TimedEvent) jsmodule.Node {
	fields := []jsmodule.Field{
		{Key: "timeSinceVideoStartedInMs", Value: jsmodule.Number(ev.OffsetMs)},
		{Key: "persistInHistory", Value: jsmodule.Bool(ev.Persist)},
		{Key: "action", Value: jsmodule.Object{Fields: []jsmodule.Field{
			{Key: "channel", Value: jsmodule.Str(ev.Action.Channel)},
			{Key: "data", Value: payloadNode(ev.Action.Data)},
		}}},
	}
	// reactions always carry repeat, even when the curated count is 0
	if _, ok := ev.Action.Data.(events.ReactionPayload); ok || ev.Repeat != 0 {
		fields = append(fields, jsmodule.Field{Key: "repeat", Value: jsmodule.Number(ev.Repeat)})
	}
	return jsmodule.Object{Fields: fields}
}

func payloadNode(data any) jsmodule.Node {
	if p, ok := data.(events.ReactionPayload); ok {
		return jsmodule.Object{Inline: true, Fields: []jsmodule.Field{
			{Key: "text", Value: jsmodule.Template(p.Text)},
			{Key: "type", Value: jsmodule.Str(p.Type)},
		}}
	}
	// JSON is a subset of JavaScript literal syntax
	return jsmodule.JSON{Value: data}
}
