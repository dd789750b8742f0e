package store

import (
	"context"
	"fmt"

	"github.com/willowed/persona/ent"
	"github.com/willowed/persona/ent/completion"
	"github.com/willowed/persona/ent/schema"
	"github.com/willowed/persona/internal/quiz"
)

type completionRepo struct {
	client *ent.Client
}

func (r *completionRepo) Save(ctx context.Context, rec *CompletionRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// At most one completion is kept. Replace rather than append.
	if _, err := tx.Completion.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear prior completion: %w", err)
	}

	_, err = tx.Completion.Create().
		SetResultID(rec.ResultID).
		SetAnswers(answersToRecords(rec.Answers)).
		SetCompletedAt(rec.CompletedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save completion: %w", err)
	}

	return tx.Commit()
}

func (r *completionRepo) Load(ctx context.Context) *CompletionRecord {
	row, err := r.client.Completion.Query().
		Order(ent.Desc(completion.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		// Missing or unreadable rows both mean a fresh start.
		return nil
	}
	if row.ResultID == "" {
		return nil
	}
	return &CompletionRecord{
		ResultID:    row.ResultID,
		Answers:     recordsToAnswers(row.Answers),
		CompletedAt: row.CompletedAt,
	}
}

func (r *completionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Completion.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear completion: %w", err)
	}
	return nil
}

func answersToRecords(answers []quiz.Answer) []schema.AnswerRecord {
	out := make([]schema.AnswerRecord, 0, len(answers))
	for _, a := range answers {
		rec := schema.AnswerRecord{QuestionID: a.QuestionID}
		for _, c := range a.Choices {
			rec.Choices = append(rec.Choices, schema.ChoiceRecord{
				OptionID: c.OptionID,
				Trait:    c.Trait,
				Sign:     c.Sign,
				Rank:     c.Rank,
			})
		}
		out = append(out, rec)
	}
	return out
}

func recordsToAnswers(records []schema.AnswerRecord) []quiz.Answer {
	out := make([]quiz.Answer, 0, len(records))
	for _, rec := range records {
		a := quiz.Answer{QuestionID: rec.QuestionID}
		for _, c := range rec.Choices {
			a.Choices = append(a.Choices, quiz.AnswerChoice{
				OptionID: c.OptionID,
				Trait:    c.Trait,
				Sign:     c.Sign,
				Rank:     c.Rank,
			})
		}
		out = append(out, a)
	}
	return out
}
