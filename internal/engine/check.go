package engine

import (
	"fmt"

	"github.com/piwi3910/maxrects/internal/model"
)

// ViolationKind names a broken layout rule.
type ViolationKind string

const (
	ItemOutsideContainer ViolationKind = "item outside container"
	ItemsOverlap         ViolationKind = "items overlap"
	FreeOverlapsItem     ViolationKind = "free region overlaps item"
	FreeContained        ViolationKind = "free region contained in another"
	FreeDegenerate       ViolationKind = "free region has no area"
	UnplacedStillFits    ViolationKind = "unplaced item fits a free region"
)

// Violation describes one broken rule. Subject and Other are the String
// forms of the values involved; Other is empty for single-value rules.
type Violation struct {
	Kind    ViolationKind
	Subject string
	Other   string
}

// Check audits a packing result against the containers it was packed into
// and returns every rule the layout breaks. A result produced by Place
// always checks clean.
//
// Rules checked:
//  1. Every placed item lies inside a container with its id
//  2. No two placed items overlap
//  3. No free region has zero area, overlaps a placed item, or lies inside
//     another free region
//  4. No unplaced item fits any remaining free region
func Check(result model.Result, containers []model.FreeRect) []Violation {
	var violations []Violation
	add := func(kind ViolationKind, subject, other fmt.Stringer) {
		v := Violation{Kind: kind, Subject: subject.String()}
		if other != nil {
			v.Other = other.String()
		}
		violations = append(violations, v)
	}

	for i, a := range result.Placed {
		if !insideAny(a, containers) {
			add(ItemOutsideContainer, a, nil)
		}
		for _, b := range result.Placed[i+1:] {
			if a.Overlaps(b) {
				add(ItemsOverlap, a, b)
			}
		}
	}

	for i, r := range result.Free {
		if r.Width <= 0 || r.Height <= 0 {
			add(FreeDegenerate, r, nil)
			continue
		}
		for _, it := range result.Placed {
			if r.Overlaps(it) {
				add(FreeOverlapsItem, r, it)
			}
		}
		for j, o := range result.Free {
			if i != j && o.Contains(r) {
				add(FreeContained, r, o)
				// One report per region is enough
				break
			}
		}
	}

	for _, it := range result.Unplaced {
		for _, r := range result.Free {
			if _, ok := fitScore(it, r); ok {
				add(UnplacedStillFits, it, r)
				break
			}
		}
	}

	return deduplicate(violations)
}

func insideAny(it model.Item, containers []model.FreeRect) bool {
	for _, c := range containers {
		if c.Contains(it) {
			return true
		}
	}
	return false
}

// deduplicate keeps the first report for each (kind, subject, other) triple.
func deduplicate(violations []Violation) []Violation {
	seen := make(map[Violation]bool)
	var out []Violation
	for _, v := range violations {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// FormatViolations produces human-readable messages from Check's output.
func FormatViolations(violations []Violation) []string {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		if v.Other == "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", v.Kind, v.Subject))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s and %s", v.Kind, v.Subject, v.Other))
	}
	return msgs
}
