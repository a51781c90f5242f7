package parser

import (
	"regexp"
	"strings"
)

// Layout identifies which of the two known column orders a row follows.
type Layout int

const (
	// LayoutA: program, code, name, credits, class, capacity, schedule, room
	LayoutA Layout = iota
	// LayoutB: program, code, name, class, credits, capacity, schedule, room
	LayoutB
	LayoutUnknown
)

func (l Layout) String() string {
	switch l {
	case LayoutA:
		return "A"
	case LayoutB:
		return "B"
	default:
		return "unknown"
	}
}

// minColumns is the number of columns a record row must have.
const minColumns = 7

var (
	columnSeparator = regexp.MustCompile(`\t| {2,}`)
	numericToken    = regexp.MustCompile(`^\d+$`)
	classNameShape  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	sectionToken    = regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+$`)
	codeToken       = regexp.MustCompile(`\d`)
)

// splitColumns splits a row on tabs or runs of two or more spaces. Empty cells
// are kept so column positions stay stable.
func splitColumns(line string) []string {
	return columnSeparator.Split(line, -1)
}

func isNumeric(s string) bool {
	return numericToken.MatchString(strings.TrimSpace(s))
}

func isClassName(s string) bool {
	return classNameShape.MatchString(strings.TrimSpace(s))
}

// reconstructColumns rebuilds a Layout B column list from a row whose
// delimiters were collapsed to single spaces. It looks for a section token
// such as "DTK-B" at index 2 or later that is followed by two numeric tokens
// (credits and capacity). The code is the first token after the program that
// contains a digit; the program is everything before the code and the name is
// everything between code and section. Returns false if no such token exists.
func reconstructColumns(line string) ([]string, bool) {
	tokens := strings.Fields(line)

	for i := 2; i+2 < len(tokens); i++ {
		if !sectionToken.MatchString(tokens[i]) || !isNumeric(tokens[i+1]) || !isNumeric(tokens[i+2]) {
			continue
		}

		codeIdx := 1
		for j := 1; j <= i-2; j++ {
			if codeToken.MatchString(tokens[j]) {
				codeIdx = j
				break
			}
		}
		if codeIdx+1 >= i {
			continue
		}

		rest := tokens[i+3:]
		var schedule, room string
		switch {
		case len(rest) >= 2:
			schedule = rest[0] + " " + rest[1]
			room = strings.Join(rest[2:], " ")
		case len(rest) == 1:
			schedule = rest[0]
		}

		return []string{
			strings.Join(tokens[:codeIdx], " "),
			tokens[codeIdx],
			strings.Join(tokens[codeIdx+1:i], " "),
			tokens[i],
			tokens[i+1],
			tokens[i+2],
			schedule,
			room,
		}, true
	}

	return nil, false
}

// detectLayout decides whether column 3 or column 4 carries the credits.
func detectLayout(cols []string) Layout {
	c3, c4 := cols[3], cols[4]
	switch {
	case isNumeric(c3) && isClassName(c4):
		return LayoutA
	case isNumeric(c4) && isClassName(c3):
		return LayoutB
	default:
		return LayoutUnknown
	}
}

// fieldIndexes returns the credits and class name column for a layout. Rows
// of unknown layout take whichever of the two columns is numeric as credits,
// defaulting to Layout A order.
func fieldIndexes(layout Layout, cols []string) (credits, className int) {
	switch layout {
	case LayoutB:
		return 4, 3
	case LayoutUnknown:
		if isNumeric(cols[4]) && !isNumeric(cols[3]) {
			return 4, 3
		}
	}
	return 3, 4
}
