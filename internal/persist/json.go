package persist

import (
	"github.com/bethropolis/retrace/internal/core/history"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// snapshotJSON gives history.Snapshot reflection-free easyjson marshalers
// without the history package depending on an encoding library.
type snapshotJSON struct {
	history.Snapshot
}

func (v *snapshotJSON) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"undo":`)
	writeStack(out, v.Undo)
	out.RawString(`,"redo":`)
	writeStack(out, v.Redo)
	out.RawString(`,"suppress_recording":`)
	out.Bool(v.SuppressRecording)
	out.RawByte('}')
}

func writeStack(out *jwriter.Writer, s history.StackSnapshot) {
	out.RawString(`{"capacity":`)
	out.Int(s.Capacity)
	out.RawString(`,"actions":[`)
	for i, a := range s.Actions {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"start":`)
		out.Int(a.Start)
		out.RawString(`,"before":`)
		out.String(a.Before)
		out.RawString(`,"after":`)
		out.String(a.After)
		out.RawByte('}')
	}
	out.RawString(`]}`)
}

func (v *snapshotJSON) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "undo":
			readStack(in, &v.Undo)
		case "redo":
			readStack(in, &v.Redo)
		case "suppress_recording":
			v.SuppressRecording = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func readStack(in *jlexer.Lexer, s *history.StackSnapshot) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "capacity":
			s.Capacity = in.Int()
		case "actions":
			in.Delim('[')
			s.Actions = s.Actions[:0]
			for !in.IsDelim(']') {
				var a history.EditAction
				readAction(in, &a)
				s.Actions = append(s.Actions, a)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func readAction(in *jlexer.Lexer, a *history.EditAction) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "start":
			a.Start = in.Int()
		case "before":
			a.Before = in.String()
		case "after":
			a.After = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
