package grading

import (
	"reflect"
	"testing"

	"github.com/abhisek/studiq/internal/questionbank"
)

func objQ(id, topic string, correct int) questionbank.Objective {
	return questionbank.Objective{
		Meta: questionbank.Meta{
			ID:       id,
			Topic:    topic,
			TopicKey: questionbank.SlugifyTopic(topic),
		},
		Options:       [4]string{"a", "b", "c", "d"},
		CorrectOption: correct,
	}
}

func ftQ(id, topic string, keywords ...string) questionbank.FreeText {
	return questionbank.FreeText{
		Meta: questionbank.Meta{
			ID:       id,
			Topic:    topic,
			TopicKey: questionbank.SlugifyTopic(topic),
		},
		Keywords: keywords,
	}
}

func TestGrade_Objective(t *testing.T) {
	questions := []questionbank.Objective{
		objQ("q1", "Deadlocks", 2),
		objQ("q2", "Threads", 0),
		objQ("q3", "Threads", 1),
	}
	answers := map[string]int{
		"q1": 2, // correct
		"q2": 3, // wrong
		// q3 unanswered
	}

	report := Grade(questions, nil, answers, nil)

	if report.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", report.TotalQuestions)
	}
	if report.ObjectiveCorrect != 1 || report.TotalCorrect != 1 {
		t.Errorf("correct = %d/%d, want 1/1", report.ObjectiveCorrect, report.TotalCorrect)
	}
	if len(report.WrongObjective) != 2 {
		t.Fatalf("len(WrongObjective) = %d, want 2", len(report.WrongObjective))
	}
	if report.WrongObjective[0].ID != "q2" || report.WrongObjective[1].ID != "q3" {
		t.Errorf("wrong ids = %s, %s", report.WrongObjective[0].ID, report.WrongObjective[1].ID)
	}
}

func TestGrade_FreeTextKeywordThreshold(t *testing.T) {
	q := ftQ("ft1", "Synchronization", "mutex", "race", "atomic")

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"two of three hits", "We used a MUTEX to avoid a RACE condition", true},
		{"zero hits", "good design", false},
		{"one of three hits", "a mutex helps", false},
		{"all hits", "mutex, race, atomic all matter", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"punctuation ignored", "mutex!!! ...race???", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Grade(nil, []questionbank.FreeText{q}, nil, map[string]string{"ft1": tt.answer})
			got := report.FreeTextCorrect == 1
			if got != tt.correct {
				t.Errorf("answer %q graded correct=%v, want %v", tt.answer, got, tt.correct)
			}
		})
	}
}

func TestGrade_SingleKeywordRequiresThatKeyword(t *testing.T) {
	q := ftQ("ft1", "Paging", "paging")

	report := Grade(nil, []questionbank.FreeText{q}, nil, map[string]string{"ft1": "something else entirely"})
	if report.FreeTextCorrect != 0 {
		t.Error("answer without the single keyword graded correct")
	}

	report = Grade(nil, []questionbank.FreeText{q}, nil, map[string]string{"ft1": "paging divides memory"})
	if report.FreeTextCorrect != 1 {
		t.Error("answer containing the single keyword graded incorrect")
	}
}

func TestGrade_Idempotent(t *testing.T) {
	objective := []questionbank.Objective{objQ("q1", "TCP", 1), objQ("q2", "Routing", 0)}
	freeText := []questionbank.FreeText{ftQ("ft1", "TCP", "window", "loss")}
	objAnswers := map[string]int{"q1": 1}
	ftAnswers := map[string]string{"ft1": "the window shrinks on loss"}

	a := Grade(objective, freeText, objAnswers, ftAnswers)
	b := Grade(objective, freeText, objAnswers, ftAnswers)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("grading not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestWeakTopics_DeduplicatedAcrossKinds(t *testing.T) {
	report := Report{
		WrongObjective: []questionbank.Objective{
			objQ("q1", "Deadlocks", 0),
			objQ("q2", "Deadlocks", 0),
			objQ("q3", "Threads", 0),
		},
		WrongFreeText: []questionbank.FreeText{
			ftQ("ft1", "Deadlocks", "k"),
			ftQ("ft2", "Virtual Memory", "k"),
		},
	}

	got := WeakTopics(report)
	want := []string{"deadlocks", "threads", "virtual-memory"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakTopics = %v, want %v", got, want)
	}
}

func TestWeakTopics_EmptyReport(t *testing.T) {
	if got := WeakTopics(Report{}); len(got) != 0 {
		t.Errorf("WeakTopics = %v, want empty", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  spaced   out  ", "spaced out"},
		{"CSMA/CD", "csma cd"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
