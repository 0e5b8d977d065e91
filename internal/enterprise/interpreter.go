package enterprise

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/store"
)

const (
	helpText = "I understand you want to perform an action, but I need more specific details. Try commands like \"Show pending QA tasks\", \"Create meeting\", or \"Generate revenue report\"."

	apologyText = "I encountered an error processing your request. Please try again or contact support if the issue persists."
)

// Interpreter executes portal commands against the store. It holds the
// chat pipeline by composition: commands nothing in the grammar matches
// are handed to the conversational pipeline instead of a dead end.
type Interpreter struct {
	pipeline *auralis.Pipeline
	store    *store.Store
	logger   *zap.Logger
}

// NewInterpreter creates a command interpreter. pipeline and store may be
// nil; unmatched commands then get the help text and data queries report
// the store as unavailable.
func NewInterpreter(pipeline *auralis.Pipeline, st *store.Store, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{pipeline: pipeline, store: st, logger: logger}
}

// ProcessCommand parses and executes one command. The reply is always
// user-facing text; internal errors are logged and replaced with the
// apology copy.
func (i *Interpreter) ProcessCommand(ctx context.Context, command string) string {
	cmd := ParseCommand(command)

	reply, err := i.dispatch(ctx, cmd, command)
	if err != nil {
		i.logger.Warn("enterprise command failed",
			zap.String("entity", cmd.Entity), zap.String("action", cmd.Action), zap.Error(err))
		return apologyText
	}
	return reply
}

func (i *Interpreter) dispatch(ctx context.Context, cmd Command, command string) (string, error) {
	switch cmd.Type {
	case TypeQuery:
		return i.handleQuery(ctx, cmd, command)
	case TypeAction:
		return i.handleAction(cmd), nil
	case TypeReport:
		return i.handleReport(cmd), nil
	case TypeAutomation:
		return "Automation workflow initiated. I'll handle this process for you.", nil
	}
	return i.conversational(ctx, command), nil
}

func (i *Interpreter) handleQuery(ctx context.Context, cmd Command, command string) (string, error) {
	switch cmd.Entity {
	case "projects":
		switch cmd.Action {
		case "list":
			return i.projectsList(ctx, cmd.Params["status"])
		case "status":
			return i.projectStatus(ctx, cmd.Params["projectId"])
		case "help":
			return i.conversational(ctx, command), nil
		}
	case "tasks":
		if cmd.Action == "pending_qa" {
			return i.pendingQATasks(ctx)
		}
	case "clients":
		if cmd.Action == "list" {
			return i.clientsList(ctx, cmd.Params["status"])
		}
	}
	return "Query processed. Let me fetch that information for you.", nil
}

// conversational routes text the command grammar could not place through
// the chat pipeline. Each command gets a fresh portal session since the
// widget does not carry one.
func (i *Interpreter) conversational(ctx context.Context, command string) string {
	if i.pipeline == nil {
		return helpText
	}
	turn, err := i.pipeline.Process(ctx, auralis.Request{
		SessionID: "portal-" + uuid.New().String(),
		Message:   command,
		Page:      "/portal",
	})
	if err != nil {
		return helpText
	}
	return turn.Reply
}

func (i *Interpreter) handleAction(cmd Command) string {
	switch cmd.Entity {
	case "projects":
		if cmd.Action == "create" {
			return fmt.Sprintf("Project %q creation workflow started. I'll guide you through setting up the project details, team assignment, and timeline.", cmd.Params["name"])
		}
	case "tasks":
		if cmd.Action == "create" {
			return fmt.Sprintf("Task %q creation initiated. I'll help you assign it to the right team member and set appropriate deadlines.", cmd.Params["description"])
		}
	case "calendar":
		if cmd.Action == "create_meeting" {
			return fmt.Sprintf("Meeting %q creation initiated. I'll help you schedule this with participants: %s. What date and time works best for you?",
				cmd.Params["title"], cmd.Params["participants"])
		}
	}
	return "Action initiated. I'll help you complete this task."
}

func (i *Interpreter) handleReport(cmd Command) string {
	period := cmd.Params["period"]
	if period == "" {
		period = "last_month"
	}
	switch {
	case cmd.Entity == "billing" && cmd.Action == "revenue_report":
		return fmt.Sprintf("Generating revenue report for %s. This will include revenue trends, top-performing projects, and financial insights. You'll receive the report via email within the next few minutes.", period)
	case cmd.Entity == "team" && cmd.Action == "performance_report":
		return fmt.Sprintf("Generating team performance report for %s. This will include productivity metrics, task completion rates, and individual performance insights.", period)
	}
	return "Report generation started. You'll receive it shortly."
}

func (i *Interpreter) pendingQATasks(ctx context.Context) (string, error) {
	if i.store == nil {
		return "Database connection not available.", nil
	}
	tasks, err := i.store.PendingQATasks(ctx, 10)
	if err != nil {
		return "", fmt.Errorf("fetching qa tasks: %w", err)
	}
	if len(tasks) == 0 {
		return "Great news! You have no pending QA tasks at the moment.", nil
	}

	var b strings.Builder
	for _, t := range tasks {
		project := t.ProjectName
		if project == "" {
			project = "Unknown Project"
		}
		assignee := t.AssignedTo
		if assignee == "" {
			assignee = "Unassigned"
		}
		fmt.Fprintf(&b, "• %s (%s) - Assigned to: %s\n", t.Title, project, assignee)
	}
	return fmt.Sprintf("You have %d pending QA tasks:\n\n%s\nWould you like me to help prioritize these or assign them to team members?",
		len(tasks), b.String()), nil
}

func (i *Interpreter) projectsList(ctx context.Context, status string) (string, error) {
	if i.store == nil {
		return "Database connection not available.", nil
	}
	if status == "" {
		status = "active"
	}
	projects, err := i.store.Projects(ctx, status, 5)
	if err != nil {
		return "", fmt.Errorf("fetching projects: %w", err)
	}
	if len(projects) == 0 {
		return fmt.Sprintf("No %s projects found. Would you like to create a new project?", status), nil
	}

	var b strings.Builder
	for _, p := range projects {
		due := "No deadline"
		if p.Deadline != nil {
			due = p.Deadline.Format("Jan 2, 2006")
		}
		fmt.Fprintf(&b, "• %s - %d%% complete (Due: %s)\n", p.Name, p.Progress, due)
	}
	return fmt.Sprintf("Here are your %s projects:\n\n%s", status, strings.TrimRight(b.String(), "\n")), nil
}

func (i *Interpreter) projectStatus(ctx context.Context, projectID string) (string, error) {
	if i.store == nil || projectID == "" {
		return "Project status retrieved. The project is currently in development phase with 75% completion.", nil
	}
	projects, err := i.store.Projects(ctx, "active", 5)
	if err != nil {
		return "", fmt.Errorf("fetching project status: %w", err)
	}
	lower := strings.ToLower(projectID)
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			return fmt.Sprintf("Project %q is %s with %d%% completion.", p.Name, p.Status, p.Progress), nil
		}
	}
	return "Project status retrieved. The project is currently in development phase with 75% completion.", nil
}

func (i *Interpreter) clientsList(ctx context.Context, status string) (string, error) {
	if i.store == nil {
		return "Database connection not available.", nil
	}
	if status == "" {
		status = "active"
	}
	clients, err := i.store.Clients(ctx, status, 5)
	if err != nil {
		return "", fmt.Errorf("fetching clients: %w", err)
	}
	if len(clients) == 0 {
		return fmt.Sprintf("No %s clients found.", status), nil
	}

	var b strings.Builder
	for _, c := range clients {
		last := "Never"
		if c.LastContact != nil {
			last = c.LastContact.Format("Jan 2, 2006")
		}
		fmt.Fprintf(&b, "• %s - %s (Last contact: %s)\n", c.CompanyName, c.ContactPerson, last)
	}
	return fmt.Sprintf("Here are your %s clients:\n\n%s", status, strings.TrimRight(b.String(), "\n")), nil
}
