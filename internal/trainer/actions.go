package trainer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/ptr"
)

// ErrInvalidAction marks action payloads rejected by validation. Invalid
// payloads are never clamped or coerced.
var ErrInvalidAction = errors.NewSentinel("invalid trainer action")

// Action is one structured operation the trainer can propose alongside its
// reply. The set is closed: every variant carries its own typed payload.
type Action interface {
	// Kind returns the wire identifier of the action.
	Kind() string
	validate() error
}

// UpdateTargetWeight changes the profile's target weight.
type UpdateTargetWeight struct {
	TargetWeightKg float64 `json:"target_weight_kg"`
}

func (UpdateTargetWeight) Kind() string { return "update_target_weight" }

func (a UpdateTargetWeight) validate() error {
	if a.TargetWeightKg <= 0 {
		return errors.Wrap(ErrInvalidAction, "target weight must be positive", slog.Float64("target_weight_kg", a.TargetWeightKg))
	}
	return nil
}

// UpdateWorkoutDays changes the weekly workout frequency.
type UpdateWorkoutDays struct {
	Days int `json:"workout_days_per_week"`
}

func (UpdateWorkoutDays) Kind() string { return "update_workout_days" }

func (a UpdateWorkoutDays) validate() error {
	if a.Days < 1 || a.Days > 7 {
		return errors.Wrap(ErrInvalidAction, "workout days must be between 1 and 7", slog.Int("workout_days_per_week", a.Days))
	}
	return nil
}

// UpdateGoal changes the explicit goal choice.
type UpdateGoal struct {
	Goal profile.GoalChoice `json:"goal"`
}

func (UpdateGoal) Kind() string { return "update_goal_type" }

func (a UpdateGoal) validate() error {
	switch a.Goal {
	case profile.GoalChoiceBulk, profile.GoalChoiceCut, profile.GoalChoiceMaintain:
		return nil
	}
	return errors.Wrap(ErrInvalidAction, "unknown goal", slog.String("goal", string(a.Goal)))
}

// AddRestDay is advisory: it reminds the user to rest, with an optional
// reason. No profile mutation.
type AddRestDay struct {
	Reason string `json:"reason"`
}

func (AddRestDay) Kind() string { return "add_rest_day" }

func (AddRestDay) validate() error { return nil }

// IncreaseProtein is advisory: it nudges protein intake upwards.
type IncreaseProtein struct {
	Amount string `json:"amount"`
}

func (IncreaseProtein) Kind() string { return "increase_protein" }

func (IncreaseProtein) validate() error { return nil }

// SuggestRoutineChange is advisory: it proposes a routine variation.
type SuggestRoutineChange struct {
	Suggestion string `json:"suggestion"`
}

func (SuggestRoutineChange) Kind() string { return "suggest_routine_change" }

func (SuggestRoutineChange) validate() error { return nil }

// MarshalJSON emits the wire shape with the type discriminator.
func (a UpdateTargetWeight) MarshalJSON() ([]byte, error) {
	type payload UpdateTargetWeight
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

func (a UpdateWorkoutDays) MarshalJSON() ([]byte, error) {
	type payload UpdateWorkoutDays
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

func (a UpdateGoal) MarshalJSON() ([]byte, error) {
	type payload UpdateGoal
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

func (a AddRestDay) MarshalJSON() ([]byte, error) {
	type payload AddRestDay
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

func (a IncreaseProtein) MarshalJSON() ([]byte, error) {
	type payload IncreaseProtein
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

func (a SuggestRoutineChange) MarshalJSON() ([]byte, error) {
	type payload SuggestRoutineChange
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{Type: a.Kind(), payload: payload(a)})
}

// rawAction is the wire shape of one action element.
type rawAction struct {
	Type           string             `json:"type"`
	TargetWeightKg float64            `json:"target_weight_kg"`
	Days           int                `json:"workout_days_per_week"`
	Goal           profile.GoalChoice `json:"goal"`
	Reason         string             `json:"reason"`
	Amount         string             `json:"amount"`
	Suggestion     string             `json:"suggestion"`
}

// ParseActions decodes a JSON array of actions, validating strictly. The
// "none" kind is accepted and dropped; any unknown kind or invalid payload
// fails the whole batch.
func ParseActions(raw []byte) ([]Action, error) {
	var rawActions []rawAction
	if err := json.Unmarshal(raw, &rawActions); err != nil {
		return nil, errors.Wrap(ErrInvalidAction, "decode actions", slog.String("raw", string(raw)))
	}

	actions := make([]Action, 0, len(rawActions))
	for _, r := range rawActions {
		action, ok, err := buildAction(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// ParseAction decodes a single action object. The "none" kind is rejected
// since there is nothing to execute.
func ParseAction(raw []byte) (Action, error) {
	var r rawAction
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, errors.Wrap(ErrInvalidAction, "decode action", slog.String("raw", string(raw)))
	}
	action, ok, err := buildAction(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrInvalidAction, "nothing to execute")
	}
	return action, nil
}

func buildAction(r rawAction) (Action, bool, error) {
	var action Action
	switch r.Type {
	case "none":
		return nil, false, nil
	case "update_target_weight":
		action = UpdateTargetWeight{TargetWeightKg: r.TargetWeightKg}
	case "update_workout_days":
		action = UpdateWorkoutDays{Days: r.Days}
	case "update_goal_type":
		action = UpdateGoal{Goal: r.Goal}
	case "add_rest_day":
		action = AddRestDay{Reason: r.Reason}
	case "increase_protein":
		action = IncreaseProtein{Amount: r.Amount}
	case "suggest_routine_change":
		action = SuggestRoutineChange{Suggestion: r.Suggestion}
	default:
		return nil, false, errors.Wrap(ErrInvalidAction, "unknown action type", slog.String("type", r.Type))
	}
	if err := action.validate(); err != nil {
		return nil, false, err
	}
	return action, true, nil
}

// ActionResult is the outcome of executing one action.
type ActionResult struct {
	Message string `json:"message"`
	Updated bool   `json:"updated"`
}

// Execute applies an action against the user's profile. Advisory actions
// only produce a message.
func Execute(ctx context.Context, profiles ProfileStore, userID string, action Action) (ActionResult, error) {
	if err := action.validate(); err != nil {
		return ActionResult{}, err
	}
	switch a := action.(type) {
	case UpdateTargetWeight:
		if _, err := profiles.Apply(ctx, userID, profile.Update{TargetWeightKg: ptr.Ref(a.TargetWeightKg)}); err != nil {
			return ActionResult{}, fmt.Errorf("update target weight: %w", err)
		}
		return ActionResult{
			Message: fmt.Sprintf("Target weight updated to %.1fkg! 💪", a.TargetWeightKg),
			Updated: true,
		}, nil
	case UpdateWorkoutDays:
		if _, err := profiles.Apply(ctx, userID, profile.Update{WorkoutDaysPerWeek: ptr.Ref(a.Days)}); err != nil {
			return ActionResult{}, fmt.Errorf("update workout days: %w", err)
		}
		return ActionResult{
			Message: fmt.Sprintf("Weekly workout days updated to %d! 🏋️", a.Days),
			Updated: true,
		}, nil
	case UpdateGoal:
		if _, err := profiles.Apply(ctx, userID, profile.Update{GoalChoice: ptr.Ref(a.Goal)}); err != nil {
			return ActionResult{}, fmt.Errorf("update goal: %w", err)
		}
		return ActionResult{
			Message: fmt.Sprintf("Goal updated to %s!", goalLabel(a.Goal)),
			Updated: true,
		}, nil
	case AddRestDay:
		return ActionResult{Message: sprintfWithDetail("Remember how important rest is! 😴", a.Reason)}, nil
	case IncreaseProtein:
		return ActionResult{Message: sprintfWithDetail("Try raising your protein intake! 🥩", a.Amount)}, nil
	case SuggestRoutineChange:
		return ActionResult{Message: sprintfWithDetail("Give a new routine a try! 🔄", a.Suggestion)}, nil
	default:
		return ActionResult{}, errors.Wrap(ErrInvalidAction, "unhandled action", slog.String("type", action.Kind()))
	}
}

func goalLabel(g profile.GoalChoice) string {
	switch g {
	case profile.GoalChoiceBulk:
		return "bulking 💪"
	case profile.GoalChoiceCut:
		return "cutting 🔥"
	default:
		return "maintenance ⚖️"
	}
}

func sprintfWithDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + " " + detail
}
