package questionbank

// Subject identifies a curriculum subject.
type Subject string

const (
	SubjectOS   Subject = "os"
	SubjectMPCA Subject = "mpca"
	SubjectCN   Subject = "cn"
	SubjectLA   Subject = "la"
	SubjectDAA  Subject = "daa"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectOS, SubjectMPCA, SubjectCN, SubjectLA, SubjectDAA}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectOS:
		return "Operating Systems"
	case SubjectMPCA:
		return "Microprocessors & Computer Architecture"
	case SubjectCN:
		return "Computer Networks"
	case SubjectLA:
		return "Linear Algebra"
	case SubjectDAA:
		return "Design & Analysis of Algorithms"
	default:
		return string(s)
	}
}

// ValidSubject reports whether s names a known subject.
func ValidSubject(s Subject) bool {
	for _, sub := range AllSubjects() {
		if s == sub {
			return true
		}
	}
	return false
}
