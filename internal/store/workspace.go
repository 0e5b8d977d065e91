package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project is one consultancy engagement tracked in the enterprise portal.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Progress  int        `json:"progress"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Task is one work item, usually tied to a project.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ProjectName string    `json:"projectName"`
	AssignedTo  string    `json:"assignedTo"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Client is one client company record.
type Client struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"companyName"`
	ContactPerson string     `json:"contactPerson"`
	Status        string     `json:"status"`
	LastContact   *time.Time `json:"lastContact,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// StatusQAPending marks a task waiting on quality assurance.
const StatusQAPending = "qa_pending"

// CreateProject inserts a project.
func (s *Store) CreateProject(ctx context.Context, name, status string, progress int, deadline *time.Time) (*Project, error) {
	if status == "" {
		status = "active"
	}
	p := Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    status,
		Progress:  progress,
		Deadline:  deadline,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, status, progress, deadline, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Status, p.Progress, p.Deadline, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return &p, nil
}

// Projects returns up to limit projects with the given status, newest first.
func (s *Store) Projects(ctx context.Context, status string, limit int) ([]Project, error) {
	if status == "" {
		status = "active"
	}
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, status, progress, deadline, created_at
		 FROM projects WHERE status = ? ORDER BY created_at DESC LIMIT ?`,
		status, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var deadline sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Progress, &deadline, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		if deadline.Valid {
			d := deadline.Time
			p.Deadline = &d
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateTask inserts a task.
func (s *Store) CreateTask(ctx context.Context, title, projectName, assignedTo, status string) (*Task, error) {
	if status == "" {
		status = "open"
	}
	t := Task{
		ID:          uuid.New().String(),
		Title:       title,
		ProjectName: projectName,
		AssignedTo:  assignedTo,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, project_name, assigned_to, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.ProjectName, t.AssignedTo, t.Status, t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &t, nil
}

// PendingQATasks returns up to limit tasks waiting on QA, newest first.
func (s *Store) PendingQATasks(ctx context.Context, limit int) ([]Task, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, project_name, assigned_to, status, created_at
		 FROM tasks WHERE status = ? ORDER BY created_at DESC LIMIT ?`,
		StatusQAPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying qa tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.ProjectName, &t.AssignedTo, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateClient inserts a client record.
func (s *Store) CreateClient(ctx context.Context, companyName, contactPerson, status string, lastContact *time.Time) (*Client, error) {
	if status == "" {
		status = "active"
	}
	c := Client{
		ID:            uuid.New().String(),
		CompanyName:   companyName,
		ContactPerson: contactPerson,
		Status:        status,
		LastContact:   lastContact,
		CreatedAt:     time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (id, company_name, contact_person, status, last_contact, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.CompanyName, c.ContactPerson, c.Status, c.LastContact, c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return &c, nil
}

// Clients returns up to limit clients with the given status, most recently
// contacted first.
func (s *Store) Clients(ctx context.Context, status string, limit int) ([]Client, error) {
	if status == "" {
		status = "active"
	}
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_name, contact_person, status, last_contact, created_at
		 FROM clients WHERE status = ? ORDER BY last_contact DESC LIMIT ?`,
		status, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		var lastContact sql.NullTime
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactPerson, &c.Status, &lastContact, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		if lastContact.Valid {
			lc := lastContact.Time
			c.LastContact = &lc
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
