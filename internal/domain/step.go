package domain

import "time"

// Status de um passo do checklist operacional
const (
	StepStatusPending    = "pending"
	StepStatusInProgress = "in_progress"
	StepStatusCompleted  = "completed"
)

// StepDefinition é um passo do playbook de lançamento pago (dado estático)
type StepDefinition struct {
	Key         string   `json:"key"`
	Phase       int      `json:"phase"`
	Order       int      `json:"order"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	DependsOn   string   `json:"depends_on,omitempty"`
}

// PhaseDefinition descreve uma das cinco fases do playbook
type PhaseDefinition struct {
	Phase       int    `json:"phase"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       string `json:"steps"`
	Duration    string `json:"duration"`
}

// LaunchStep é a instância persistida de um passo para um lançamento
type LaunchStep struct {
	ID          string     `json:"id"`
	LaunchID    string     `json:"launch_id"`
	StepKey     string     `json:"step_key"`
	Phase       int        `json:"phase"`
	Order       int        `json:"order"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	Items       []StepItem `json:"items,omitempty"`
}

// StepItem é um item do checklist de um passo
type StepItem struct {
	ID        string `json:"id"`
	StepID    string `json:"step_id"`
	Label     string `json:"label"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}

// UpdateStepRequest marca um passo ou um item do checklist
type UpdateStepRequest struct {
	StepID    string  `json:"step_id"`
	Status    *string `json:"status"`
	ItemID    *string `json:"item_id"`
	Completed *bool   `json:"completed"`
}

// PhaseProgress resume o avanço de uma fase do checklist
type PhaseProgress struct {
	Phase     int    `json:"phase"`
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
}
