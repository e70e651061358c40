// Package quizui provides the vocabulary quiz: question generation and
// the Bubble Tea interface.
package quizui

import (
	"math/rand"

	"github.com/dojang-app/dojang/internal/catalog"
)

// Question is one multiple-choice vocabulary question.
type Question struct {
	Item    catalog.VocabularyItem
	Options []string
	Answer  string
}

// Generate builds up to count questions from the given items. Each
// question shows the Korean term and optionCount translations, exactly
// one of them correct. Items with too few distinct wrong answers get
// shorter option lists.
func Generate(items []catalog.VocabularyItem, count, optionCount int, rng *rand.Rand) []Question {
	if count <= 0 || len(items) == 0 {
		return nil
	}
	if optionCount < 2 {
		optionCount = 2
	}
	shuffled := append([]catalog.VocabularyItem(nil), items...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}

	questions := make([]Question, 0, len(shuffled))
	for _, item := range shuffled {
		wrong := wrongAnswers(items, item, optionCount-1, rng)
		options := append(wrong, item.Meaning)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		questions = append(questions, Question{
			Item:    item,
			Options: options,
			Answer:  item.Meaning,
		})
	}
	return questions
}

func wrongAnswers(items []catalog.VocabularyItem, correct catalog.VocabularyItem, n int, rng *rand.Rand) []string {
	seen := map[string]struct{}{correct.Meaning: {}}
	var pool []string
	for _, it := range items {
		if _, ok := seen[it.Meaning]; ok {
			continue
		}
		seen[it.Meaning] = struct{}{}
		pool = append(pool, it.Meaning)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
