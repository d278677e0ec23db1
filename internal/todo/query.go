package todo

import (
	"slices"
	"sort"
	"strings"
)

// Selection is the first query stage: which class of tasks to start from.
type Selection int

const (
	SelectPending Selection = iota
	SelectDone
	SelectPriority
)

func (s Selection) String() string {
	switch s {
	case SelectDone:
		return "done"
	case SelectPriority:
		return "priority"
	default:
		return "pending"
	}
}

// SelectionFor picks the selection named by tokens. Priority wins over
// done; anything else selects pending tasks.
func SelectionFor(tokens []string) Selection {
	switch {
	case slices.Contains(tokens, "p"), slices.Contains(tokens, "priority"):
		return SelectPriority
	case slices.Contains(tokens, "done"):
		return SelectDone
	default:
		return SelectPending
	}
}

// Select applies a selection. Priority results are re-sorted by raw line
// text; done and pending results keep file order.
func Select(tasks []Task, sel Selection) []Task {
	var out []Task
	for _, t := range tasks {
		switch sel {
		case SelectPriority:
			if t.HasPriority() {
				out = append(out, t)
			}
		case SelectDone:
			if t.Done {
				out = append(out, t)
			}
		default:
			if !t.Done {
				out = append(out, t)
			}
		}
	}
	if sel == SelectPriority {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Raw < out[j].Raw })
	}
	return out
}

// Sigils returns the tokens that start with a project or context sigil.
func Sigils(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if tok[0] == sigilProject || tok[0] == sigilContext {
			out = append(out, tok)
		}
	}
	return out
}

// FilterSigils keeps tasks whose raw text contains any of sigils as a
// substring, so "+work" also matches "+workshop". No sigils keeps everything.
func FilterSigils(tasks []Task, sigils []string) []Task {
	if len(sigils) == 0 {
		return tasks
	}
	var out []Task
	for _, t := range tasks {
		if slices.ContainsFunc(sigils, func(s string) bool { return strings.Contains(t.Raw, s) }) {
			out = append(out, t)
		}
	}
	return out
}

// Query runs the selection stage then the sigil stage.
func Query(tasks []Task, tokens []string) []Task {
	return FilterSigils(Select(tasks, SelectionFor(tokens)), Sigils(tokens))
}

// Lines renders tasks for display, one per line.
func Lines(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.String()
	}
	return out
}
