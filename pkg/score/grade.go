package score

// Grade is a letter grade derived from the total score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"
)

// GradeFor maps a total to its grade: A >= 85, B >= 75, C >= 65, else F.
func GradeFor(total int) Grade {
	switch {
	case total >= 85:
		return GradeA
	case total >= 75:
		return GradeB
	case total >= 65:
		return GradeC
	default:
		return GradeF
	}
}

// Rank orders grades so that A > B > C > F.
func (g Grade) Rank() int {
	switch g {
	case GradeA:
		return 3
	case GradeB:
		return 2
	case GradeC:
		return 1
	default:
		return 0
	}
}

// ParseGrade returns the grade for s and whether it is one of A, B, C, F.
func ParseGrade(s string) (Grade, bool) {
	switch g := Grade(s); g {
	case GradeA, GradeB, GradeC, GradeF:
		return g, true
	}
	return "", false
}
