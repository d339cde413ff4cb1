package questionbank

import "fmt"

// Placeholder topics used for subjects that ship without authored content.
// Six topics per unit keeps balanced selection meaningful.
var (
	placeholderTopicsUnit1 = []string{
		"Fundamentals",
		"Architecture",
		"Process Models",
		"Memory Concepts",
		"Algorithm Basics",
		"Core Definitions",
	}
	placeholderTopicsUnit2 = []string{
		"Scheduling",
		"Optimization",
		"Security",
		"Concurrency",
		"Analysis",
		"Advanced Applications",
	}
)

// placeholderPool generates a synthetic but structurally complete pool:
// 15 objective questions per unit plus 4 free-text questions per unit.
func placeholderPool(subject Subject) *Pool {
	pool := &Pool{Subject: subject}
	name := SubjectDisplayName(subject)

	addObjective := func(unit Unit, topics []string, correct int) {
		for i := 1; i <= 15; i++ {
			topic := topics[(i-1)%len(topics)]
			options := [4]string{}
			for j := range options {
				options[j] = fmt.Sprintf("Distractor %d for %s (%d)", j+1, topic, i)
			}
			options[correct] = fmt.Sprintf("Correct statement of the %s principle (%d)", topic, i)
			pool.Objective = append(pool.Objective, Objective{
				Meta: Meta{
					ID:          fmt.Sprintf("%s-obj-u%d-%d", subject, unit, i),
					Subject:     subject,
					Unit:        unit,
					Topic:       topic,
					TopicKey:    SlugifyTopic(topic),
					Prompt:      fmt.Sprintf("%s, Unit %d (%s), question %d: choose the best statement.", name, unit, topic, i),
					Explanation: fmt.Sprintf("The correct option states the core %s principle.", topic),
				},
				Options:       options,
				CorrectOption: correct,
			})
		}
	}
	addObjective(Unit1, placeholderTopicsUnit1, 0)
	addObjective(Unit2, placeholderTopicsUnit2, 1)

	addFreeText := func(unit Unit, topics []string) {
		for i := 1; i <= 4; i++ {
			topic := topics[(i-1)%len(topics)]
			pool.FreeText = append(pool.FreeText, FreeText{
				Meta: Meta{
					ID:          fmt.Sprintf("%s-ft-u%d-%d", subject, unit, i),
					Subject:     subject,
					Unit:        unit,
					Topic:       topic,
					TopicKey:    SlugifyTopic(topic),
					Prompt:      fmt.Sprintf("%s, Unit %d (%s): explain the concept in your own words with an example.", name, unit, topic),
					Explanation: fmt.Sprintf("Strong answers define %s, explain its role, and give one applied example.", topic),
				},
				IdealAnswer: fmt.Sprintf("A strong answer defines %s, explains its role in %s, and provides one practical example.", topic, name),
				Keywords:    []string{SlugifyTopic(topic), "example", "role", "definition"},
			})
		}
	}
	addFreeText(Unit1, placeholderTopicsUnit1)
	addFreeText(Unit2, placeholderTopicsUnit2)

	return pool
}
