package questionbank

import "testing"

func TestLoad_AllSubjectsPresent(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, s := range AllSubjects() {
		pool := bank.Pool(s)
		if pool == nil {
			t.Errorf("no pool for subject %s", s)
			continue
		}
		if len(pool.Objective) == 0 {
			t.Errorf("subject %s has no objective questions", s)
		}
		if len(pool.FreeText) == 0 {
			t.Errorf("subject %s has no free-text questions", s)
		}
	}
}

func TestLoad_TopicKeysNormalized(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, pool := range bank {
		for _, q := range pool.Objective {
			if q.TopicKey == "" {
				t.Errorf("question %s has empty topic key", q.ID)
			}
		}
		for _, q := range pool.FreeText {
			if q.TopicKey == "" {
				t.Errorf("question %s has empty topic key", q.ID)
			}
		}
	}
}

func TestLoad_UniqueIDsPerPool(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for subject, pool := range bank {
		seen := make(map[string]bool)
		for _, q := range pool.Objective {
			if seen[q.ID] {
				t.Errorf("subject %s: duplicate id %s", subject, q.ID)
			}
			seen[q.ID] = true
		}
		for _, q := range pool.FreeText {
			if seen[q.ID] {
				t.Errorf("subject %s: duplicate id %s", subject, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestParsePool_RejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing subject", `{"objective":[],"freeText":[]}`},
		{"unknown subject", `{"subject":"chemistry","objective":[],"freeText":[]}`},
		{"three options", `{"subject":"os","objective":[{"id":"x","unit":1,"topic":"T","prompt":"p","options":["a","b","c"],"correctOptionIndex":0}],"freeText":[]}`},
		{"index out of range", `{"subject":"os","objective":[{"id":"x","unit":1,"topic":"T","prompt":"p","options":["a","b","c","d"],"correctOptionIndex":4}],"freeText":[]}`},
		{"bad unit", `{"subject":"os","objective":[{"id":"x","unit":3,"topic":"T","prompt":"p","options":["a","b","c","d"],"correctOptionIndex":0}],"freeText":[]}`},
		{"empty keywords", `{"subject":"os","objective":[],"freeText":[{"id":"y","unit":2,"topic":"T","prompt":"p","idealAnswer":"a","keywords":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parsePool(tt.name, []byte(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParsePool_SlugFallback(t *testing.T) {
	raw := `{"subject":"os","objective":[{"id":"x","unit":1,"topic":"Virtual Memory","prompt":"p","options":["a","b","c","d"],"correctOptionIndex":0}],"freeText":[]}`
	pool, err := parsePool("inline", []byte(raw))
	if err != nil {
		t.Fatalf("parsePool: %v", err)
	}
	if got := pool.Objective[0].TopicKey; got != "virtual-memory" {
		t.Errorf("TopicKey = %q, want virtual-memory", got)
	}
}

func TestSlugifyTopic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Virtual Memory", "virtual-memory"},
		{"CPU  Scheduling", "cpu-scheduling"},
		{"Design & Analysis", "design-analysis"},
		{"I/O Systems", "i-o-systems"},
		{"deadlocks", "deadlocks"},
		{"  Trimmed  ", "trimmed"},
	}
	for _, tt := range tests {
		if got := SlugifyTopic(tt.in); got != tt.want {
			t.Errorf("SlugifyTopic(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
