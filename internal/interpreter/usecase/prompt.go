package usecase

import (
	"fmt"
	"time"
)

const systemPrompt = `You turn a user's free-form message into structured actions for a personal assistant.

Return ONLY a JSON object of the form {"actions": [...]}. No markdown, no explanation text.
Each action is {"kind": K, "payload": P, "confidence": C} where C is a number between 0 and 1
that says how sure you are the user asked for this action.

Supported kinds and payloads:
- "task":     {"title": string (required), "description": string, "due_at": string,
               "priority": "p0"|"p1"|"p2"|"p3", "category": string}
- "note":     {"title": string, "content": string (required), "category": string}
- "reminder": {"message": string (required), "remind_at": string (required)}
- "category": {"name": string (required), "color": string}

Dates and times: write absolute RFC3339 timestamps with the user's UTC offset
(e.g. "2026-02-24T09:00:00+07:00"), or a plain date "YYYY-MM-DD" when no time is given.
If no priority is mentioned omit it. Emit one action per distinct thing the user wants.
If the message asks for nothing actionable, return {"actions": []}.`

// buildPrompt renders the user turn with the current time for relative date resolution.
func buildPrompt(text string, now time.Time) string {
	return fmt.Sprintf("CURRENT TIME: %s (%s, %s)\n\nUSER MESSAGE:\n%s",
		now.Format(time.RFC3339), now.Location(), now.Weekday(), text)
}
