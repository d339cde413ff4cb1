package questionbank

import "strings"

// Unit is one of the two curriculum units a subject is split into.
// Question selection balances across units.
type Unit int

const (
	Unit1 Unit = 1
	Unit2 Unit = 2
)

// Meta holds the fields shared by every question kind.
//
// TopicKey is the canonical grouping key. Content files may carry an
// explicit topicSlug; when they don't, the loader derives one from the
// display topic. After loading, every question has a non-empty TopicKey
// and no downstream code falls back to the display name.
type Meta struct {
	ID          string
	Subject     Subject
	Unit        Unit
	Topic       string
	TopicKey    string
	Prompt      string
	Explanation string
}

// QuestionID returns the stable unique identifier.
func (m Meta) QuestionID() string { return m.ID }

// QuestionUnit returns the curriculum unit.
func (m Meta) QuestionUnit() Unit { return m.Unit }

// QuestionTopicKey returns the canonical topic key.
func (m Meta) QuestionTopicKey() string { return m.TopicKey }

// Objective is a four-option multiple-choice question.
type Objective struct {
	Meta
	Options       [4]string
	CorrectOption int // index into Options, 0-3
}

// FreeText is an open-ended question graded by keyword overlap
// against the ideal answer's required concepts.
type FreeText struct {
	Meta
	IdealAnswer string
	Keywords    []string
}

// Pool is the immutable question content for one subject, partitioned
// by question kind. Pools are loaded once and never mutated.
type Pool struct {
	Subject   Subject
	Objective []Objective
	FreeText  []FreeText
}

// Bank maps each subject to its question pool.
type Bank map[Subject]*Pool

// Pool returns the pool for a subject, or nil if the subject is unknown.
func (b Bank) Pool(s Subject) *Pool {
	return b[s]
}

// SlugifyTopic derives a canonical topic key from a display name:
// lowercase, runs of non-alphanumeric characters collapsed to single
// hyphens, no leading or trailing hyphen.
func SlugifyTopic(topic string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(topic) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}
