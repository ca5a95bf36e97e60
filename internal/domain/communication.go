package domain

import "time"

// Canais de comunicação do cronograma de 44 dias
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelInstagram Channel = "instagram"
	ChannelStories   Channel = "stories"
	ChannelAds       Channel = "ads"
)

// Channels lista os canais na ordem usada pela interface
var Channels = []Channel{ChannelEmail, ChannelWhatsApp, ChannelInstagram, ChannelStories, ChannelAds}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status de uma ação de comunicação persistida
const (
	CommunicationStatusPending  = "pending"
	CommunicationStatusApproved = "approved"
)

// CommunicationAction é uma ação de marketing de um dia do cronograma
type CommunicationAction struct {
	Channel     Channel  `json:"channel"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// CommunicationDay é um dia do cronograma com pelo menos uma ação.
// Dias sem ação não aparecem na sequência gerada
type CommunicationDay struct {
	Day     int                   `json:"day"`
	Date    time.Time             `json:"date"`
	Label   string                `json:"label"`
	Phase   string                `json:"phase"`
	Actions []CommunicationAction `json:"actions"`
}

// Communication é a linha persistida de uma ação do cronograma, com o
// vínculo opcional de conteúdo de IA aprovado
type Communication struct {
	ID                string    `json:"id"`
	LaunchID          string    `json:"launch_id"`
	Day               int       `json:"day"`
	Date              time.Time `json:"date"`
	Channel           Channel   `json:"channel"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Status            string    `json:"status"`
	ApprovedContentID *string   `json:"approved_content_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateCommunicationRequest aprova/desaprova uma ação ou vincula conteúdo
type UpdateCommunicationRequest struct {
	CommunicationID   string  `json:"communication_id"`
	Status            *string `json:"status"`
	ApprovedContentID *string `json:"approved_content_id"`
}

// taskTypes são ações operacionais que não recebem copy gerada por IA
var taskTypes = map[string]struct{}{
	"campanha":   {}, // ativar campanhas de tráfego
	"otimizacao": {}, // otimizar campanhas
	"live":       {}, // stories ao vivo do evento
	"countdown":  {}, // stories de contagem regressiva
}

// IsTaskAction informa se o tipo da ação é tarefa operacional (checklist)
// em vez de slot de conteúdo
func IsTaskAction(actionType string) bool {
	_, ok := taskTypes[actionType]
	return ok
}
