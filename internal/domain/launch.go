package domain

import "time"

// Status possíveis de um lançamento
type LaunchStatus string

const (
	LaunchStatusDraft    LaunchStatus = "draft"
	LaunchStatusActive   LaunchStatus = "active"
	LaunchStatusFinished LaunchStatus = "finished"
	LaunchStatusArchived LaunchStatus = "archived"
)

// Launch representa um lançamento pago: evento com ingresso pago seguido
// da venda de um produto high ticket
type Launch struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Niche         string       `json:"niche"`
	Expert        string       `json:"expert"`
	Followers     int          `json:"followers"`
	TargetTickets int          `json:"target_tickets"`
	Budget        float64      `json:"budget"`
	SaleDays      int          `json:"sale_days"`
	EventDate     time.Time    `json:"event_date"`
	EventDuration int          `json:"event_duration"`
	EventPlatform string       `json:"event_platform"`
	BigIdea       string       `json:"big_idea"`
	Narrative     string       `json:"narrative"`
	Theme         string       `json:"theme"`
	MaxCPA        float64      `json:"max_cpa"`
	DailyPacing   int          `json:"daily_pacing"`
	Status        LaunchStatus `json:"status"`
	TicketBatches []TicketBatch `json:"ticket_batches,omitempty"`
	Products      []Product     `json:"products,omitempty"`
	OrderBumps    []OrderBump   `json:"order_bumps,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BatchConfig é a configuração de um lote informada no planejamento.
// Por convenção os preços formam uma escada não-decrescente; a validação
// disso é responsabilidade de quem monta a lista
type BatchConfig struct {
	Name     string  `json:"name"`
	Order    int     `json:"order"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// TicketBatch é um lote persistido de um lançamento
type TicketBatch struct {
	ID       string  `json:"id"`
	LaunchID string  `json:"launch_id"`
	Name     string  `json:"name"`
	Order    int     `json:"order"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Sold     int     `json:"sold"`
	Status   string  `json:"status"` // active, upcoming, soldout
}

type ProductType string

const (
	ProductTypeMain     ProductType = "main"
	ProductTypeDownsell ProductType = "downsell"
	ProductTypeTripwire ProductType = "tripwire"
)

type Product struct {
	ID       string      `json:"id"`
	LaunchID string      `json:"launch_id"`
	Type     ProductType `json:"type"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
}

// OrderBump é uma oferta de baixo atrito no checkout do ingresso.
// O bump de gravações pode conceder cashback no high ticket
type OrderBump struct {
	ID             string  `json:"id"`
	LaunchID       string  `json:"launch_id"`
	Name           string  `json:"name"`
	Label          string  `json:"label"`
	Price          float64 `json:"price"`
	HasCashback    bool    `json:"has_cashback"`
	CashbackAmount float64 `json:"cashback_amount"`
}

// LaunchFormData é o payload de criação de um lançamento
type LaunchFormData struct {
	Name          string        `json:"name"`
	Niche         string        `json:"niche"`
	Expert        string        `json:"expert"`
	Followers     int           `json:"followers"`
	TargetTickets int           `json:"target_tickets"`
	Budget        float64       `json:"budget"`
	SaleDays      int           `json:"sale_days"`
	EventDate     string        `json:"event_date"`
	EventDuration int           `json:"event_duration"`
	EventPlatform string        `json:"event_platform"`
	MainProduct   ProductInput  `json:"main_product"`
	OrderBumps    OrderBumpsInput `json:"order_bumps"`
	Downsell      OptionalOffer `json:"downsell"`
	Tripwire      OptionalOffer `json:"tripwire"`
	Batches       []BatchConfig `json:"batches"`
	BigIdea       string        `json:"big_idea"`
	Narrative     string        `json:"narrative"`
	Theme         string        `json:"theme"`
}

type ProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OptionalOffer struct {
	Enabled bool    `json:"enabled"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

type OrderBumpsInput struct {
	Gravacoes  OrderBumpInput `json:"gravacoes"`
	Debriefing OrderBumpInput `json:"debriefing"`
	Materiais  OrderBumpInput `json:"materiais"`
	Combo      OrderBumpInput `json:"combo"`
}

type OrderBumpInput struct {
	Enabled        bool    `json:"enabled"`
	Price          float64 `json:"price"`
	HasCashback    bool    `json:"has_cashback"`
	CashbackAmount float64 `json:"cashback_amount"`
}

// UpdateLaunchRequest atualiza parcialmente um lançamento
type UpdateLaunchRequest struct {
	ID            string   `json:"id"`
	Name          *string  `json:"name"`
	Niche         *string  `json:"niche"`
	Expert        *string  `json:"expert"`
	Followers     *int     `json:"followers"`
	TargetTickets *int     `json:"target_tickets"`
	Budget        *float64 `json:"budget"`
	SaleDays      *int     `json:"sale_days"`
	EventDate     *string  `json:"event_date"`
	BigIdea       *string  `json:"big_idea"`
	Narrative     *string  `json:"narrative"`
	Theme         *string  `json:"theme"`
	Status        *string  `json:"status"`
}
