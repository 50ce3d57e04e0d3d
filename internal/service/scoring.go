package service

import (
	"sort"

	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/model"
)

// ScoreAnswers aggregates trait points for one submission. For every question
// of the quiz (in store order) it looks up the first submitted pair naming
// that question, then the picked answer within it; unanswered questions and
// stale answer ids contribute nothing and are not an error. Each matched
// answer adds its full trait map to the running totals.
//
// The returned order slice lists traits by first contribution. Within one
// answer, trait keys are walked in sorted order so the accumulation order is
// deterministic.
func ScoreAnswers(questions []model.Question, submitted []dto.SubmittedAnswerDTO) (map[string]float64, []string) {
	picked := make(map[uint]uint, len(submitted))
	for _, s := range submitted {
		if _, ok := picked[s.QuestionID]; !ok {
			picked[s.QuestionID] = s.AnswerID
		}
	}

	scores := make(map[string]float64)
	var order []string

	for _, question := range questions {
		answerID, ok := picked[question.ID]
		if !ok {
			continue
		}

		var answer *model.Answer
		for i := range question.Answers {
			if question.Answers[i].ID == answerID {
				answer = &question.Answers[i]
				break
			}
		}
		if answer == nil {
			continue
		}

		traits := make([]string, 0, len(answer.Traits))
		for trait := range answer.Traits {
			traits = append(traits, trait)
		}
		sort.Strings(traits)

		for _, trait := range traits {
			if _, seen := scores[trait]; !seen {
				order = append(order, trait)
			}
			scores[trait] += answer.Traits[trait]
		}
	}

	return scores, order
}

// WinningTrait picks the trait with the highest accumulated score. Candidates
// are visited in first-contribution order and only a strictly greater score
// displaces the current holder, so on a tie the trait that reached the
// maximum first wins. ok is false when nothing scored at all.
func WinningTrait(scores map[string]float64, order []string) (winner string, ok bool) {
	if len(order) == 0 {
		return "", false
	}

	winner = order[0]
	for _, trait := range order[1:] {
		if scores[trait] > scores[winner] {
			winner = trait
		}
	}
	return winner, true
}
