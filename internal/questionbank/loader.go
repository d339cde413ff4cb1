package questionbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/*.json
var contentFS embed.FS

// bankFile is the on-disk shape of a subject's content file.
type bankFile struct {
	Subject   string          `json:"subject"`
	Objective []objectiveFile `json:"objective"`
	FreeText  []freeTextFile  `json:"freeText"`
}

type questionFile struct {
	ID          string `json:"id"`
	Unit        int    `json:"unit"`
	Topic       string `json:"topic"`
	TopicSlug   string `json:"topicSlug"`
	Prompt      string `json:"prompt"`
	Explanation string `json:"explanation"`
}

type objectiveFile struct {
	questionFile
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

type freeTextFile struct {
	questionFile
	IdealAnswer string   `json:"idealAnswer"`
	Keywords    []string `json:"keywords"`
}

// Load builds the full question bank from embedded content, or from the
// directory named by STUDIQ_CONTENT when set. Subjects without a content
// file receive a generated placeholder pool so every subject is usable.
func Load() (Bank, error) {
	files, err := readContentFiles()
	if err != nil {
		return nil, err
	}

	bank := make(Bank, len(AllSubjects()))
	for name, raw := range files {
		pool, err := parsePool(name, raw)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if _, dup := bank[pool.Subject]; dup {
			return nil, fmt.Errorf("load %s: duplicate content for subject %q", name, pool.Subject)
		}
		bank[pool.Subject] = pool
	}

	for _, s := range AllSubjects() {
		if bank[s] == nil {
			bank[s] = placeholderPool(s)
		}
	}

	for _, pool := range bank {
		if err := checkUniqueIDs(pool); err != nil {
			return nil, err
		}
	}

	return bank, nil
}

func readContentFiles() (map[string][]byte, error) {
	out := make(map[string][]byte)

	if dir := os.Getenv("STUDIQ_CONTENT"); dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read content dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			b, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", e.Name(), err)
			}
			out[e.Name()] = b
		}
		return out, nil
	}

	err := fs.WalkDir(contentFS, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := contentFS.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.Base(path)] = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedded content: %w", err)
	}
	return out, nil
}

// parsePool validates and decodes one content file, normalizing every
// question to a mandatory TopicKey.
func parsePool(name string, raw []byte) (*Pool, error) {
	if err := validateBankJSON(raw); err != nil {
		return nil, err
	}

	var bf bankFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	subject := Subject(bf.Subject)
	if !ValidSubject(subject) {
		return nil, fmt.Errorf("unknown subject %q", bf.Subject)
	}

	pool := &Pool{Subject: subject}
	for _, q := range bf.Objective {
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %s: expected 4 options, got %d", q.ID, len(q.Options))
		}
		obj := Objective{
			Meta:          q.meta(subject),
			CorrectOption: q.CorrectOptionIndex,
		}
		copy(obj.Options[:], q.Options)
		pool.Objective = append(pool.Objective, obj)
	}
	for _, q := range bf.FreeText {
		pool.FreeText = append(pool.FreeText, FreeText{
			Meta:        q.meta(subject),
			IdealAnswer: q.IdealAnswer,
			Keywords:    q.Keywords,
		})
	}
	return pool, nil
}

func (q questionFile) meta(subject Subject) Meta {
	key := q.TopicSlug
	if key == "" {
		key = SlugifyTopic(q.Topic)
	}
	return Meta{
		ID:          q.ID,
		Subject:     subject,
		Unit:        Unit(q.Unit),
		Topic:       q.Topic,
		TopicKey:    key,
		Prompt:      q.Prompt,
		Explanation: q.Explanation,
	}
}

func checkUniqueIDs(pool *Pool) error {
	seen := make(map[string]bool, len(pool.Objective)+len(pool.FreeText))
	check := func(id string) error {
		if seen[id] {
			return fmt.Errorf("subject %s: duplicate question id %q", pool.Subject, id)
		}
		seen[id] = true
		return nil
	}
	for _, q := range pool.Objective {
		if err := check(q.ID); err != nil {
			return err
		}
	}
	for _, q := range pool.FreeText {
		if err := check(q.ID); err != nil {
			return err
		}
	}
	return nil
}
