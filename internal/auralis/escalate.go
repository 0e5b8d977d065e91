package auralis

import (
	"fmt"
	"strings"
)

var (
	highPriorityTriggers   = []string{"urgent", "emergency", "critical"}
	mediumPriorityTriggers = []string{"error", "bug", "not working"}
)

// repeatWindow is the number of trailing intents that must agree before a
// conversation counts as stuck on one topic.
const repeatWindow = 3

// DetectEscalation decides whether a conversation should be flagged for
// human hand-off. Rules are checked in fixed order (urgent, technical,
// repetition) and at most one escalation is returned per call.
func DetectEscalation(message string, messageCount int, intentHistory []Detection) *Escalation {
	lower := strings.ToLower(message)

	for _, trigger := range highPriorityTriggers {
		if strings.Contains(lower, trigger) {
			return &Escalation{
				Reason:         "Urgent request detected",
				Priority:       PriorityHigh,
				ContextSummary: fmt.Sprintf("User reported urgent issue: %q. Message count: %d", message, messageCount),
			}
		}
	}

	for _, trigger := range mediumPriorityTriggers {
		if strings.Contains(lower, trigger) {
			return &Escalation{
				Reason:         "Technical issue reported",
				Priority:       PriorityMedium,
				ContextSummary: fmt.Sprintf("Technical problem: %q. Session messages: %d", message, messageCount),
			}
		}
	}

	// Repetition rule: the user has sent more than five messages and the
	// last three classified intents are all the same.
	if messageCount > 5 && len(intentHistory) >= repeatWindow {
		recent := intentHistory[len(intentHistory)-repeatWindow:]
		repeated := recent[0].Intent
		same := true
		for _, det := range recent[1:] {
			if det.Intent != repeated {
				same = false
				break
			}
		}
		if same {
			return &Escalation{
				Reason:         "Repeated questions on same topic",
				Priority:       PriorityMedium,
				ContextSummary: fmt.Sprintf("User has asked %d messages, mostly about %s", messageCount, repeated),
			}
		}
	}

	return nil
}
