package trainer

import (
	"fmt"
	"strings"

	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

const maxRecentLogs = 7

// SystemPrompt builds the coaching persona and user context the model sees
// before the conversation.
func SystemPrompt(p profile.Profile, recentLogs []diary.Log) string {
	var b strings.Builder

	b.WriteString(`You are the expert AI trainer of the Project Anchovy fitness app. Be friendly and motivating.

## Role
- Give expert advice on training and nutrition
- Tailor guidance to the user's goal
- Motivate and encourage
- Converse naturally

## Conversation style
- Friendly, encouraging tone
- Use emoji sparingly to keep it warm
- Give concrete, actionable advice
- Keep answers short (a couple of sentences), expanding only when asked

## Structured actions
When the user asks you to change their settings, append one final line to
your reply of the form
[ACTIONS] [{"type": "...", ...}]
with a JSON array of actions. Supported types: update_target_weight
(target_weight_kg), update_workout_days (workout_days_per_week),
update_goal_type (goal: bulk|cut|maintain), add_rest_day (reason),
increase_protein (amount), suggest_routine_change (suggestion), none.
Omit the line entirely when there is nothing to do.

`)

	b.WriteString("## User\n")
	nickname := p.Nickname
	if nickname == "" {
		nickname = "member"
	}
	fmt.Fprintf(&b, "- Nickname: %s\n", nickname)
	fmt.Fprintf(&b, "- Height: %.0fcm\n", p.HeightCm)
	fmt.Fprintf(&b, "- Current weight: %.1fkg\n", p.CurrentWeightKg)
	fmt.Fprintf(&b, "- Target weight: %.1fkg\n", p.TargetWeightKg)
	fmt.Fprintf(&b, "- Goal: %s\n", goalDescription(p.GoalChoice))
	fmt.Fprintf(&b, "- Experience: %s\n", experienceDescription(string(p.ExperienceLevel)))
	fmt.Fprintf(&b, "- Workout days per week: %d\n", p.WorkoutDaysPerWeek)
	fmt.Fprintf(&b, "- Lactose intolerant: %s\n", yesNo(p.LactoseIntolerant))
	fmt.Fprintf(&b, "- Vegetarian: %s\n", yesNo(p.Vegetarian))
	if p.GymAccess {
		b.WriteString("- Gym access: yes\n")
	} else {
		b.WriteString("- Gym access: no (home training)\n")
	}
	fmt.Fprintf(&b, "- Lifestyle: %s\n", string(p.Lifestyle))

	if len(recentLogs) > 0 {
		b.WriteString("\n## Last 7 days\n")
		logs := recentLogs
		if len(logs) > maxRecentLogs {
			logs = logs[:maxRecentLogs]
		}
		for _, log := range logs {
			fmt.Fprintf(&b, "- %s: %d/5 meals, %d exercises completed\n",
				log.Date.Format("2006-01-02"), log.DietScore(), len(log.CompletedExercises))
		}
	}

	b.WriteString(`
## Cautions
- Avoid medical advice; refer serious health concerns to a professional
- Always respect the user's restrictions (lactose intolerance, vegetarian diet)
- Never recommend excessive training or extreme diets
- Emphasise gradual progress`)

	return b.String()
}

func goalDescription(g profile.GoalChoice) string {
	switch g {
	case profile.GoalChoiceBulk:
		return "bulk up (gain weight)"
	case profile.GoalChoiceCut:
		return "diet (lose weight)"
	case profile.GoalChoiceMaintain:
		return "maintain weight"
	default:
		return string(g)
	}
}

func experienceDescription(level string) string {
	switch level {
	case "beginner":
		return "beginner (under 6 months)"
	case "intermediate":
		return "intermediate (6 months to 2 years)"
	case "advanced":
		return "advanced (over 2 years)"
	default:
		return level
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// InitialGreeting is the trainer's opening message for a user.
func InitialGreeting(p profile.Profile) string {
	nickname := p.Nickname
	if nickname == "" {
		nickname = "member"
	}

	remaining := p.TargetWeightKg - p.CurrentWeightKg
	if remaining < 0 {
		remaining = -remaining
	}
	if remaining == 0 {
		return fmt.Sprintf("Hi %s! 💪 I am your AI trainer.\n\nAsk me anything about training, nutrition or your goal!", nickname)
	}

	direction := "to gain"
	goalText := "bulking"
	switch p.GoalChoice {
	case profile.GoalChoiceCut:
		direction = "to lose"
		goalText = "cutting"
	case profile.GoalChoiceMaintain:
		goalText = "maintenance"
	}
	return fmt.Sprintf("Hi %s! 💪 I am your AI trainer.\n\n%.1fkg left %s for your %s goal. Let's go! 🔥\n\nAsk me anything!",
		nickname, remaining, direction, goalText)
}

// QuickReplies suggests tappable follow-up prompts for a chat context.
func QuickReplies(context string) []string {
	switch context {
	case "greeting":
		return []string{
			"What should I train today?",
			"What should I eat today?",
			"I am not gaining weight 😢",
			"Motivate me!",
		}
	case "workout":
		return []string{
			"How much weight should I add?",
			"I am sore, can I still train?",
			"Should I do more sets?",
			"When should I do cardio?",
		}
	case "diet":
		return []string{
			"Recommend a protein supplement",
			"Is a late-night snack okay?",
			"Recommend bulking snacks",
			"What do I do at a team dinner?",
		}
	default:
		return []string{
			"Am I doing well this week?",
			"How far to my goal?",
			"Plan next week for me",
			"I hit a slump 😞",
		}
	}
}
