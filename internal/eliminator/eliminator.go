package eliminator

import (
	"github.com/rhyrak/krsplan/pkg/model"
)

// DefaultMessage is the reason a rule appends when none was configured.
const DefaultMessage = "Eliminated"

// Rule appends a reason to reasons if it would exclude candidate and returns
// the possibly extended slice.
type Rule interface {
	Apply(candidate model.SubjectSchedule, reasons []string) []string
}

// Chain runs its rules in order. Every rule runs even when an earlier one has
// already eliminated the candidate, so reasons accumulate.
type Chain struct {
	rules []Rule
}

func NewChain(rules ...Rule) *Chain {
	return &Chain{rules: rules}
}

// Then links r after the last rule of the chain.
func (c *Chain) Then(r Rule) *Chain {
	c.rules = append(c.rules, r)
	return c
}

// Build assembles the wanted-set, drop-name and locked-schedule rules, in
// that order. Rules with no input are left out.
func Build(want []string, drop string, lock *model.Schedule) *Chain {
	chain := NewChain()
	if len(want) > 0 {
		rule := NewUnchosenSetRule(want...)
		rule.Message = "not among the chosen subjects"
		chain.Then(rule)
	}
	if drop != "" {
		rule := NewChosenNameRule(drop)
		rule.Message = "subject " + drop + " was removed"
		chain.Then(rule)
	}
	if lock != nil {
		rule := NewOverlapTimeRule(*lock)
		rule.Message = "overlaps " + lock.String()
		chain.Then(rule)
	}
	return chain
}

func (c *Chain) Len() int {
	return len(c.rules)
}

func (c *Chain) Apply(candidate model.SubjectSchedule, reasons []string) []string {
	for _, r := range c.rules {
		reasons = r.Apply(candidate, reasons)
	}
	return reasons
}

// Result holds the reasons collected for one candidate. No reasons means the
// candidate survived.
type Result struct {
	Candidate model.SubjectSchedule `json:"candidate"`
	Reasons   []string              `json:"reasons"`
}

func (r Result) Eliminated() bool {
	return len(r.Reasons) > 0
}

// Run applies the chain to every candidate in order.
func (c *Chain) Run(candidates []model.SubjectSchedule) []Result {
	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, Result{
			Candidate: candidate,
			Reasons:   c.Apply(candidate, []string{}),
		})
	}
	return results
}

// Survivors returns the candidates without any reasons.
func Survivors(results []Result) []model.SubjectSchedule {
	var out []model.SubjectSchedule
	for _, r := range results {
		if !r.Eliminated() {
			out = append(out, r.Candidate)
		}
	}
	return out
}
