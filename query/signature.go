package query

import (
	"github.com/viant/semindex/finder"
	"github.com/viant/semindex/psi"
	"github.com/viant/semindex/syntax"
)

// ParameterInformation labels one parameter of a signature.
type ParameterInformation struct {
	Label string
}

// SignatureInformation is one candidate overload.
type SignatureInformation struct {
	Label         string
	Documentation string
	Parameters    []ParameterInformation
}

// SignatureHelp is the full response: candidate overloads plus which
// signature and parameter are active.
type SignatureHelp struct {
	Signatures      []SignatureInformation
	ActiveSignature int
	ActiveParameter int
}

// SignatureHelp lists candidate methods for the innermost enclosing
// active Call, following the same dispatch as definition resolution. ok is
// false when no enclosing call is active or no
// candidate resolves.
func (e *Engine) SignatureHelp(tree syntax.Node, pos syntax.Position) (SignatureHelp, bool) {
	res := finder.Find(tree, pos)
	call := activeCall(res, pos)
	if call == nil {
		return SignatureHelp{}, false
	}

	callRes := res
	callRes.Node = call

	_, argc, isNew, owner, candidates, ok := e.Resolver.CallCandidates(callRes, pos)
	if !ok {
		return SignatureHelp{}, false
	}
	if isNew {
		candidates = e.Resolver.ConstructorCandidates(owner)
	}
	if len(candidates) == 0 {
		return SignatureHelp{}, false
	}

	help := SignatureHelp{}
	for _, m := range candidates {
		doc, _ := m.Documentation()
		info := SignatureInformation{Label: m.DisplaySignature(), Documentation: doc}
		for _, p := range m.Params {
			info.Parameters = append(info.Parameters, ParameterInformation{Label: p})
		}
		help.Signatures = append(help.Signatures, info)
	}

	help.ActiveSignature = 0
	for i, m := range candidates {
		if m.Arity.Matches(argc) {
			help.ActiveSignature = i
			break
		}
	}

	active := candidates[help.ActiveSignature]
	help.ActiveParameter = activeParameter(call, pos, active)
	return help, true
}

// activeCall walks the ancestor path innermost-first for a Call the
// cursor is active in: between the name-end and the call-end, with
// parentheses or any arguments.
func activeCall(res finder.Result, pos syntax.Position) syntax.Node {
	path := res.NodePath
	if len(path) == 0 {
		path = res.PreviousNodePath
	}
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.Kind() != syntax.KindCall {
			continue
		}
		nameLoc, ok := n.NameLocation()
		if !ok {
			nameLoc = n.Location()
		}
		end := n.Location().End
		if !nameLoc.End.LessEqual(pos) || !pos.LessEqual(end) {
			continue
		}
		if n.Flag(syntax.FlagParens) || len(n.Fields(syntax.FieldArgs)) > 0 || len(n.Fields(syntax.FieldNamedArgs)) > 0 {
			return n
		}
	}
	return nil
}

// activeParameter computes the active-parameter index for the call's
// cursor position against the chosen overload, clamped to the overload's
// parameter list.
func activeParameter(call syntax.Node, pos syntax.Position, m *psi.Method) int {
	args := call.Fields(syntax.FieldArgs)
	named := call.Fields(syntax.FieldNamedArgs)

	idx := -1
	for i, a := range args {
		loc := a.Location()
		if loc.Contains(pos) || pos.LessEqual(loc.End) {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, na := range named {
			loc := na.Location()
			if !loc.Contains(pos) && !pos.LessEqual(loc.End) {
				continue
			}
			name := na.Text()
			if f := na.Field(syntax.FieldName); f != nil {
				name = f.Text()
			}
			for pi, p := range m.Params {
				if p == name {
					return clampParam(pi, m)
				}
			}
			idx = len(args) + i
			break
		}
	}
	if idx < 0 {
		// Cursor past every argument: the next positional slot.
		idx = len(args) + len(named)
	}
	return clampParam(idx, m)
}

func clampParam(idx int, m *psi.Method) int {
	if len(m.Params) == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx > len(m.Params)-1 {
		return len(m.Params) - 1
	}
	return idx
}
