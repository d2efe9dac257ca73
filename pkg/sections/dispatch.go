package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/constants"
	"github.com/ajxudir/sysupdate/pkg/filtering"
	"github.com/ajxudir/sysupdate/pkg/verbose"
)

// Summary collects the results of one run in dispatch order.
type Summary struct {
	Results []Result
}

// OK reports whether no dispatched section failed.
func (s Summary) OK() bool {
	for _, r := range s.Results {
		if !r.OK {
			return false
		}
	}
	return true
}

// Failed returns the names of failed sections.
func (s Summary) Failed() []string {
	var failed []string
	for _, r := range s.Results {
		if !r.OK {
			failed = append(failed, r.Name)
		}
	}
	return failed
}

// Count returns how many results have the given status.
func (s Summary) Count(status string) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Dispatch runs every section that passes the filter and its applicability
// check, in order.
//
// The filter is consulted first so that excluded sections are not probed.
// Filtered and inapplicable sections are recorded with OK set to true.
//
// Parameters:
//   - ctx: Context handed to every command
//   - env: Shared executor, probe and console
//   - list: Sections in dispatch order
//   - filter: Section names selected on the command line
//
// Returns:
//   - Summary: One result per section of list
func Dispatch(ctx context.Context, env *Env, list []Section, filter filtering.SectionFilter) Summary {
	summary := Summary{Results: make([]Result, 0, len(list))}

	for _, s := range list {
		if !filter.Allows(s.Name) {
			verbose.SectionFiltered(s.Name, "not selected")
			summary.Results = append(summary.Results, Result{Name: s.Name, Status: constants.StatusFiltered, OK: true})
			continue
		}
		if !s.Applicable(env) {
			verbose.SectionFiltered(s.Name, "not applicable on this machine")
			summary.Results = append(summary.Results, Result{Name: s.Name, Status: constants.StatusNotApplicable, OK: true})
			continue
		}

		r := s.Update(ctx, env)
		r.Name = s.Name
		verbose.Debugf("Section '%s' finished: %s", s.Name, r.Status)
		summary.Results = append(summary.Results, r)
	}

	return summary
}
