package usecase

import (
	"context"
	"fmt"

	"chat-assistant/internal/interaction"
	repo "chat-assistant/internal/interaction/repository"
	"chat-assistant/internal/model"
	"chat-assistant/internal/notification"
	"chat-assistant/internal/workspace"
)

const notificationEntityType = "interaction"

// Approve applies every proposed action in one transaction. On failure nothing survives,
// the interaction ends failed, and a *interaction.PartialApplyError is returned.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	return uc.approve(ctx, sc, id, false)
}

// Reject closes a pending interaction without touching any entity store.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	it, err := uc.transition(ctx, sc, repo.TransitionOptions{
		ID:      id,
		UserID:  sc.UserID,
		From:    interaction.StatusPending,
		To:      interaction.StatusRejected,
		Decided: true,
	})
	if err != nil {
		return interaction.Interaction{}, err
	}
	uc.metrics.RecordDecision(ctx, string(interaction.StatusRejected), false)
	return it, nil
}

func (uc *implUseCase) approve(ctx context.Context, sc model.Scope, id string, auto bool) (interaction.Interaction, error) {
	it, err := uc.transition(ctx, sc, repo.TransitionOptions{
		ID:           id,
		UserID:       sc.UserID,
		From:         interaction.StatusPending,
		To:           interaction.StatusApproved,
		Decided:      true,
		AutoApproved: auto,
	})
	if err != nil {
		return interaction.Interaction{}, err
	}

	var (
		applied []workspace.ApplyOutput
		results []model.ActionResult
		final   interaction.Interaction
	)
	err = uc.withTx(ctx, func(ctx context.Context) error {
		var err error
		applied, results, err = uc.applyActions(ctx, sc, it)
		if err != nil {
			return err
		}

		final, err = uc.transition(ctx, sc, repo.TransitionOptions{
			ID:      it.ID,
			UserID:  sc.UserID,
			From:    interaction.StatusApproved,
			To:      interaction.StatusApplied,
			Results: results,
		})
		if err != nil {
			return err
		}

		_, err = uc.notification.Record(ctx, sc, notification.RecordInput{
			EntityType: notificationEntityType,
			EntityID:   it.ID,
			Message:    fmt.Sprintf("Applied %d action(s) from %q", len(applied), truncate(it.SourceText, 80)),
		})
		return err
	})
	if err != nil {
		return uc.fail(ctx, sc, it, results, err, auto)
	}

	for _, a := range applied {
		uc.metrics.RecordActionApplied(ctx, string(a.Kind))
	}
	uc.metrics.RecordDecision(ctx, string(interaction.StatusApplied), auto)
	uc.mirrorReminders(ctx, sc, applied)
	return final, nil
}

// applyActions persists the actions in order. On the first failure it returns the outcome of
// every action: earlier ones rolled back, the failing one failed, later ones skipped.
func (uc *implUseCase) applyActions(ctx context.Context, sc model.Scope, it interaction.Interaction) ([]workspace.ApplyOutput, []model.ActionResult, error) {
	applied := make([]workspace.ApplyOutput, 0, len(it.ProposedActions))
	results := make([]model.ActionResult, len(it.ProposedActions))

	for i, action := range it.ProposedActions {
		out, err := uc.workspace.Apply(ctx, sc, workspace.ApplyInput{InteractionID: it.ID, Action: action})
		if err != nil {
			for j := range it.ProposedActions {
				r := model.ActionResult{Index: j, Kind: it.ProposedActions[j].Kind}
				switch {
				case j < i:
					r.Outcome = model.ActionOutcomeRolledBack
				case j == i:
					r.Outcome = model.ActionOutcomeFailed
					r.Error = err.Error()
				default:
					r.Outcome = model.ActionOutcomeSkipped
				}
				results[j] = r
			}
			return nil, results, fmt.Errorf("action %d (%s): %w", i, action.Kind, err)
		}

		applied = append(applied, out)
		results[i] = model.ActionResult{
			Index:    i,
			Kind:     action.Kind,
			Outcome:  model.ActionOutcomeApplied,
			EntityID: out.EntityID,
		}
	}
	return applied, results, nil
}

// fail records the rolled-back approval. It runs outside the request's cancellation so a
// client disconnect cannot leave the interaction stuck in approved.
func (uc *implUseCase) fail(ctx context.Context, sc model.Scope, it interaction.Interaction, results []model.ActionResult, cause error, auto bool) (interaction.Interaction, error) {
	uc.l.Warnf(ctx, "uc.Approve: interaction %s rolled back: %v", it.ID, cause)
	ctx = context.WithoutCancel(ctx)

	results = rolledBack(it.ProposedActions, results)
	partial := &interaction.PartialApplyError{InteractionID: it.ID, Results: results, Cause: cause}

	failed, err := uc.transition(ctx, sc, repo.TransitionOptions{
		ID:            it.ID,
		UserID:        sc.UserID,
		From:          interaction.StatusApproved,
		To:            interaction.StatusFailed,
		Results:       results,
		FailureReason: cause.Error(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve transition to failed: %v", err)
		return it, partial
	}
	uc.metrics.RecordDecision(ctx, string(interaction.StatusFailed), auto)

	if _, err := uc.notification.Record(ctx, sc, notification.RecordInput{
		EntityType: notificationEntityType,
		EntityID:   it.ID,
		Message:    fmt.Sprintf("Could not apply %q: %v", truncate(it.SourceText, 80), cause),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Approve notification.Record: %v", err)
	}
	return failed, partial
}

// rolledBack marks every action that had been applied inside the aborted transaction as
// rolled back. A failure before any action ran yields rolled_back for all of them.
func rolledBack(actions []model.ActionDescriptor, results []model.ActionResult) []model.ActionResult {
	out := make([]model.ActionResult, len(actions))
	for i, a := range actions {
		r := model.ActionResult{Index: i, Kind: a.Kind, Outcome: model.ActionOutcomeRolledBack}
		if i < len(results) && results[i].Outcome != "" && results[i].Outcome != model.ActionOutcomeApplied {
			r = results[i]
		}
		out[i] = r
	}
	return out
}

// mirrorReminders copies applied reminders into the calendar after commit. Failures are logged.
func (uc *implUseCase) mirrorReminders(ctx context.Context, sc model.Scope, applied []workspace.ApplyOutput) {
	for _, a := range applied {
		if a.Reminder == nil {
			continue
		}
		if err := uc.workspace.MirrorReminder(ctx, sc, *a.Reminder); err != nil {
			uc.l.Warnf(ctx, "uc.Approve MirrorReminder %s: %v", a.Reminder.ID, err)
		}
	}
}

// transition runs the CAS and classifies a miss by re-reading the row.
func (uc *implUseCase) transition(ctx context.Context, sc model.Scope, opt repo.TransitionOptions) (interaction.Interaction, error) {
	it, err := uc.repo.TransitionStatus(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.transition TransitionStatus: %v", err)
		return interaction.Interaction{}, err
	}
	if it.ID != "" {
		return it, nil
	}

	current, err := uc.repo.GetOneInteraction(ctx, opt.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.transition GetOneInteraction: %v", err)
		return interaction.Interaction{}, err
	}
	return interaction.Interaction{}, classifyMiss(sc, current, opt.From)
}

func classifyMiss(sc model.Scope, current interaction.Interaction, want interaction.Status) error {
	switch {
	case current.ID == "":
		return interaction.ErrInteractionNotFound
	case current.UserID != sc.UserID:
		return interaction.ErrForbidden
	default:
		return fmt.Errorf("%w: is %s, want %s", interaction.ErrInvalidState, current.Status, want)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

