package core

import (
	"fmt"

	"github.com/tim-tx/cello-utils/internal/shared"
)

//go:generate go tool stringer -type=headerState -trimprefix=state -output=headerstate_string.go

// SimpleRule declares a column that may appear at most once.
type SimpleRule struct {
	Role     string
	Required bool
}

// MemberRule declares a column that belongs to the most recently opened
// instance of its group.
type MemberRule struct {
	Role       string
	Required   bool
	Repeatable bool
}

// GroupRule declares a repeated block: an opener column followed by its
// members. Each occurrence of the opener starts a new instance.
type GroupRule struct {
	Opener  string
	Members []MemberRule
}

// HeaderGrammar is the closed set of column roles a stage recognizes.
type HeaderGrammar struct {
	Simple []SimpleRule
	Groups []GroupRule
}

// GroupInstance holds the column positions of one occurrence of a group.
type GroupInstance struct {
	Opener  int
	members map[string][]int
}

// Member returns the column of a non-repeatable member, or -1.
func (g GroupInstance) Member(role string) int {
	if positions := g.members[role]; len(positions) > 0 {
		return positions[0]
	}
	return -1
}

// Members returns every column of a repeatable member in header order.
func (g GroupInstance) Members(role string) []int {
	return g.members[role]
}

// HeaderIndex maps column roles of one table to their positions.
type HeaderIndex struct {
	File   string
	simple map[string]int
	groups map[string][]GroupInstance
}

// Column returns the position of a simple role, or -1 when absent.
func (h HeaderIndex) Column(role string) int {
	if idx, ok := h.simple[role]; ok {
		return idx
	}
	return -1
}

func (h HeaderIndex) Groups(opener string) []GroupInstance {
	return h.groups[opener]
}

type headerState int

const (
	stateExpectSimple headerState = iota
	stateExpectGroupOpener
	stateInGroup
)

type tokenClass int

const (
	tokenUnknown tokenClass = iota
	tokenSimple
	tokenOpener
	tokenMember
)

type headerToken struct {
	class  tokenClass
	simple SimpleRule
	group  *GroupRule
	member MemberRule
}

// IndexHeader scans header left to right and attributes every cell to a
// role of grammar. Group members attach to the open group instance; a
// simple role closes it. Any cell the grammar cannot place is rejected.
func IndexHeader(file string, header []string, grammar HeaderGrammar) (HeaderIndex, error) {
	idx := HeaderIndex{
		File:   file,
		simple: map[string]int{},
		groups: map[string][]GroupInstance{},
	}
	state := stateExpectSimple
	if len(grammar.Simple) == 0 {
		state = stateExpectGroupOpener
	}
	var open *GroupRule

	for pos, raw := range header {
		cell := shared.NormalizeHeaderCell(raw, pos == 0)
		token := classify(grammar, cell)
		reject := func(reason string) error {
			return &UnrecognizedColumnError{File: file, Position: pos, Column: cell, Reason: reason}
		}

		switch token.class {
		case tokenUnknown:
			return HeaderIndex{}, reject("unknown column")

		case tokenSimple:
			if _, seen := idx.simple[cell]; seen {
				return HeaderIndex{}, reject("duplicate column")
			}
			if state == stateInGroup {
				if err := closeGroup(idx, open); err != nil {
					return HeaderIndex{}, err
				}
				open = nil
			}
			idx.simple[cell] = pos
			state = stateExpectSimple
			if len(idx.simple) == len(grammar.Simple) {
				state = stateExpectGroupOpener
			}

		case tokenOpener:
			if state == stateInGroup {
				if err := closeGroup(idx, open); err != nil {
					return HeaderIndex{}, err
				}
			}
			open = token.group
			idx.groups[open.Opener] = append(idx.groups[open.Opener], GroupInstance{
				Opener:  pos,
				members: map[string][]int{},
			})
			state = stateInGroup

		case tokenMember:
			if state != stateInGroup {
				return HeaderIndex{}, reject(fmt.Sprintf("%q must follow %q (state %s)", cell, token.group.Opener, state))
			}
			if open.Opener != token.group.Opener {
				return HeaderIndex{}, reject(fmt.Sprintf("%q does not belong to the open %q group", cell, open.Opener))
			}
			instances := idx.groups[open.Opener]
			current := instances[len(instances)-1]
			if !token.member.Repeatable && len(current.members[cell]) > 0 {
				return HeaderIndex{}, reject(fmt.Sprintf("%q already given for this %q", cell, open.Opener))
			}
			current.members[cell] = append(current.members[cell], pos)
		}
	}

	if state == stateInGroup {
		if err := closeGroup(idx, open); err != nil {
			return HeaderIndex{}, err
		}
	}
	for _, rule := range grammar.Simple {
		if _, ok := idx.simple[rule.Role]; rule.Required && !ok {
			return HeaderIndex{}, &MissingColumnError{File: file, Column: rule.Role}
		}
	}
	return idx, nil
}

func closeGroup(idx HeaderIndex, open *GroupRule) error {
	instances := idx.groups[open.Opener]
	current := instances[len(instances)-1]
	for _, member := range open.Members {
		if member.Required && len(current.members[member.Role]) == 0 {
			return &MissingColumnError{File: idx.File, Column: member.Role, Group: open.Opener}
		}
	}
	return nil
}

func classify(grammar HeaderGrammar, cell string) headerToken {
	for _, rule := range grammar.Simple {
		if rule.Role == cell {
			return headerToken{class: tokenSimple, simple: rule}
		}
	}
	for i := range grammar.Groups {
		group := &grammar.Groups[i]
		if group.Opener == cell {
			return headerToken{class: tokenOpener, group: group}
		}
		for _, member := range group.Members {
			if member.Role == cell {
				return headerToken{class: tokenMember, group: group, member: member}
			}
		}
	}
	return headerToken{class: tokenUnknown}
}
