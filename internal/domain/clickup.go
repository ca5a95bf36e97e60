package domain

import "time"

// ClickUpList é uma lista dentro de uma pasta do ClickUp
type ClickUpList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount string `json:"task_count"`
}

// ClickUpFolder é uma pasta do space configurado no ClickUp
type ClickUpFolder struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Lists []ClickUpList `json:"lists"`
}

// ClickUpTask é uma tarefa pronta para exportação
type ClickUpTask struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	Tags        []string  `json:"tags"`
}

// ExportRequest define o destino e o escopo de uma exportação
type ExportRequest struct {
	LaunchID     string `json:"launch_id"`
	ListID       string `json:"list_id"`
	IncludeSteps bool   `json:"include_steps"`
}

// ExportTaskResult é o resultado individual da criação de uma tarefa
type ExportTaskResult struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id,omitempty"`
	Name    string `json:"name"`
	Error   string `json:"error,omitempty"`
}

// ExportResult agrega o resultado de uma exportação completa
type ExportResult struct {
	Total   int                `json:"total"`
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Results []ExportTaskResult `json:"results"`
}
