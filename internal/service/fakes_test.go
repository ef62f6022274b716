package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/lshigami/qa-service/internal/model"
)

// memStore backs both fake repositories so cascade and foreign-key rules
// behave like the database.
type memStore struct {
	questions  []model.Question
	answers    []model.Answer
	nextQID    uint
	nextAID    uint
	failWith   error
	existsHook func(id uint) // runs before Exists answers; used to simulate races
}

type fakeQuestionRepo struct{ s *memStore }

type fakeAnswerRepo struct{ s *memStore }

func newMemStore() *memStore {
	return &memStore{}
}

func (r fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.nextQID++
	q.ID = r.s.nextQID
	q.CreatedAt = time.Now()
	r.s.questions = append(r.s.questions, *q)
	return nil
}

func (r fakeQuestionRepo) FindAll(_ context.Context) ([]model.Question, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]model.Question, len(r.s.questions))
	copy(out, r.s.questions)
	return out, nil
}

func (r fakeQuestionRepo) FindByIDWithAnswers(_ context.Context, id uint) (*model.Question, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, q := range r.s.questions {
		if q.ID == id {
			q.Answers = []model.Answer{}
			for _, a := range r.s.answers {
				if a.QuestionID == id {
					q.Answers = append(q.Answers, a)
				}
			}
			return &q, nil
		}
	}
	return nil, fmt.Errorf("get question: %w", errorz.ErrNotFound)
}

func (r fakeQuestionRepo) Exists(_ context.Context, id uint) (bool, error) {
	if r.s.failWith != nil {
		return false, r.s.failWith
	}
	found := false
	for _, q := range r.s.questions {
		if q.ID == id {
			found = true
		}
	}
	if r.s.existsHook != nil {
		r.s.existsHook(id)
	}
	return found, nil
}

func (r fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	for i, q := range r.s.questions {
		if q.ID == id {
			r.s.questions = append(r.s.questions[:i], r.s.questions[i+1:]...)
			kept := r.s.answers[:0]
			for _, a := range r.s.answers {
				if a.QuestionID != id {
					kept = append(kept, a)
				}
			}
			r.s.answers = kept
			return nil
		}
	}
	return errorz.ErrNotFound
}

func (r fakeAnswerRepo) Create(_ context.Context, a *model.Answer) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	for _, q := range r.s.questions {
		if q.ID == a.QuestionID {
			r.s.nextAID++
			a.ID = r.s.nextAID
			a.CreatedAt = time.Now()
			r.s.answers = append(r.s.answers, *a)
			return nil
		}
	}
	return fmt.Errorf("create answer: %w", errorz.ErrConstraintViolation)
}

func (r fakeAnswerRepo) FindByID(_ context.Context, id uint) (*model.Answer, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, a := range r.s.answers {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get answer: %w", errorz.ErrNotFound)
}

func (r fakeAnswerRepo) Delete(_ context.Context, id uint) error {
	for i, a := range r.s.answers {
		if a.ID == id {
			r.s.answers = append(r.s.answers[:i], r.s.answers[i+1:]...)
			return nil
		}
	}
	return errorz.ErrNotFound
}
