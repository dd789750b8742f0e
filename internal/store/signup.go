package store

import (
	"context"
	"fmt"
	"time"

	"github.com/willowed/persona/ent"
)

type signupRepo struct {
	client *ent.Client
}

func (r *signupRepo) Append(ctx context.Context, data SignupData) error {
	_, err := r.client.SignupEvent.Create().
		SetEmail(data.Email).
		SetPersonalityTypeID(data.PersonalityTypeID).
		SetSessionID(data.SessionID).
		SetTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append signup: %w", err)
	}
	return nil
}
