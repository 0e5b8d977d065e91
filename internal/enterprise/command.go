// Package enterprise interprets natural-language operational commands for
// the admin portal and turns analytics into dashboard insights.
package enterprise

import (
	"regexp"
	"strings"
)

// CommandType categorizes what a command wants to happen.
type CommandType string

const (
	TypeQuery      CommandType = "query"
	TypeAction     CommandType = "action"
	TypeReport     CommandType = "report"
	TypeAutomation CommandType = "automation"
)

// Command is the structured form of a natural-language portal command.
type Command struct {
	Type   CommandType       `json:"type"`
	Entity string            `json:"entity"`
	Action string            `json:"action"`
	Params map[string]string `json:"params"`
}

var (
	projectIDRe = regexp.MustCompile(`(?i)project\s+(\w+)`)
	taskDescRe  = regexp.MustCompile(`(?i)(?:create|add)\s+(?:a\s+)?task\s+(?:to|for)\s+(.+)`)
	meetingRe   = regexp.MustCompile(`(?i)meeting\s+(?:about|for|with)\s+(.+)`)
)

// ParseCommand maps a free-text command onto a structured Command using
// keyword rules. Rules are checked in fixed order; commands nothing
// matches fall through to the projects help query.
func ParseCommand(command string) Command {
	lower := strings.ToLower(command)

	if strings.Contains(lower, "project") {
		switch {
		case strings.Contains(lower, "create") || strings.Contains(lower, "new"):
			return Command{Type: TypeAction, Entity: "projects", Action: "create",
				Params: map[string]string{"name": extractProjectName(command)}}
		case strings.Contains(lower, "status") || strings.Contains(lower, "progress"):
			return Command{Type: TypeQuery, Entity: "projects", Action: "status",
				Params: map[string]string{"projectId": extractProjectID(command)}}
		case strings.Contains(lower, "list") || strings.Contains(lower, "show"):
			return Command{Type: TypeQuery, Entity: "projects", Action: "list",
				Params: map[string]string{"status": extractStatus(lower)}}
		}
	}

	if strings.Contains(lower, "task") {
		switch {
		case strings.Contains(lower, "pending") || strings.Contains(lower, "qa"):
			return Command{Type: TypeQuery, Entity: "tasks", Action: "pending_qa", Params: map[string]string{}}
		case strings.Contains(lower, "create") || strings.Contains(lower, "add"):
			return Command{Type: TypeAction, Entity: "tasks", Action: "create",
				Params: map[string]string{"description": extractTaskDescription(command)}}
		}
	}

	if strings.Contains(lower, "meeting") || strings.Contains(lower, "schedule") {
		return Command{Type: TypeAction, Entity: "calendar", Action: "create_meeting",
			Params: map[string]string{
				"title":        extractMeetingTitle(command),
				"participants": strings.Join(extractParticipants(lower), " "),
			}}
	}

	if strings.Contains(lower, "report") || strings.Contains(lower, "generate") {
		switch {
		case strings.Contains(lower, "revenue") || strings.Contains(lower, "financial"):
			return Command{Type: TypeReport, Entity: "billing", Action: "revenue_report",
				Params: map[string]string{"period": extractPeriod(lower)}}
		case strings.Contains(lower, "performance") || strings.Contains(lower, "productivity"):
			return Command{Type: TypeReport, Entity: "team", Action: "performance_report",
				Params: map[string]string{"period": extractPeriod(lower)}}
		}
	}

	if strings.Contains(lower, "client") {
		if strings.Contains(lower, "list") || strings.Contains(lower, "show") {
			return Command{Type: TypeQuery, Entity: "clients", Action: "list",
				Params: map[string]string{"status": extractStatus(lower)}}
		}
	}

	return Command{Type: TypeQuery, Entity: "projects", Action: "help", Params: map[string]string{}}
}

func extractProjectName(command string) string {
	words := strings.Fields(command)
	for i, word := range words {
		if strings.Contains(strings.ToLower(word), "project") && i+1 < len(words) {
			return strings.Join(words[i+1:], " ")
		}
	}
	return "New Project"
}

func extractProjectID(command string) string {
	if m := projectIDRe.FindStringSubmatch(command); m != nil {
		return m[1]
	}
	return ""
}

func extractStatus(lower string) string {
	switch {
	case strings.Contains(lower, "active"):
		return "active"
	case strings.Contains(lower, "completed"):
		return "completed"
	case strings.Contains(lower, "pending"):
		return "pending"
	}
	return "active"
}

func extractTaskDescription(command string) string {
	if m := taskDescRe.FindStringSubmatch(command); m != nil {
		return m[1]
	}
	return "New Task"
}

func extractMeetingTitle(command string) string {
	if m := meetingRe.FindStringSubmatch(command); m != nil {
		return m[1]
	}
	return "Team Meeting"
}

func extractParticipants(lower string) []string {
	words := strings.Fields(lower)
	for i, word := range words {
		if word == "with" && i+1 < len(words) {
			return words[i+1:]
		}
	}
	return []string{"team"}
}

func extractPeriod(lower string) string {
	switch {
	case strings.Contains(lower, "last month"):
		return "last_month"
	case strings.Contains(lower, "this month"):
		return "this_month"
	case strings.Contains(lower, "last week"):
		return "last_week"
	case strings.Contains(lower, "this week"):
		return "this_week"
	case strings.Contains(lower, "quarter"):
		return "quarter"
	}
	return "last_month"
}
