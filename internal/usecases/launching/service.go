// Package launching administra o ciclo de vida dos lançamentos pagos
package launching

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/calculating"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

// TrafficTicketsRate é a fração da meta esperada via tráfego pago
const TrafficTicketsRate = 0.7

// Rótulos fixos dos order bumps do checkout
var orderBumpLabels = map[string]string{
	"gravacoes":  "Acesso em Formato de Aulas",
	"debriefing": "Debriefing Exclusivo",
	"materiais":  "Kit de Materiais",
	"combo":      "Combo Completo",
}

type LaunchService interface {
	CreateLaunch(ctx context.Context, form *domain.LaunchFormData) (*domain.Launch, error)
	GetLaunch(launchID string) (*domain.Launch, error)
	ListLaunches(statuses []domain.LaunchStatus) ([]*domain.Launch, error)
	UpdateLaunch(request *domain.UpdateLaunchRequest) (*domain.Launch, error)
	DeleteLaunch(ctx context.Context, launchID string) error
	GetMetrics(launchID string) (*domain.LaunchMetrics, error)
}

type Service struct {
	launchRepository repository.LaunchRepository
}

func NewService(launchRepository repository.LaunchRepository) LaunchService {
	return &Service{
		launchRepository: launchRepository,
	}
}

// CreateLaunch monta o lançamento a partir do formulário de planejamento.
// O CPA máximo e o ritmo diário são derivados das fórmulas e persistidos
// junto com o lançamento
func (s *Service) CreateLaunch(ctx context.Context, form *domain.LaunchFormData) (*domain.Launch, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, NewLaunchError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do lançamento é obrigatório")
	}

	eventDate, err := time.Parse("2006-01-02", form.EventDate)
	if err != nil {
		return nil, NewLaunchError(ErrInvalidEventDate, apiErrors.ErrInvalidFormat, "Data do evento inválida, use o formato AAAA-MM-DD")
	}

	trafficTickets := int(math.Round(float64(form.TargetTickets) * TrafficTicketsRate))
	cpa := calculating.CalculateMaxCPA(form.Budget, trafficTickets)
	pacing := calculating.CalculatePacing(form.TargetTickets, form.SaleDays)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewLaunchError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID do lançamento")
	}

	launch := &domain.Launch{
		ID:            id,
		Name:          form.Name,
		Niche:         form.Niche,
		Expert:        form.Expert,
		Followers:     form.Followers,
		TargetTickets: form.TargetTickets,
		Budget:        form.Budget,
		SaleDays:      form.SaleDays,
		EventDate:     eventDate,
		EventDuration: form.EventDuration,
		EventPlatform: form.EventPlatform,
		BigIdea:       form.BigIdea,
		Narrative:     form.Narrative,
		Theme:         form.Theme,
		MaxCPA:        cpa.MaxCPA,
		DailyPacing:   pacing.PacingTotal,
		Status:        domain.LaunchStatusActive,
		TicketBatches: buildBatches(id, form.Batches),
		Products:      buildProducts(id, form),
		OrderBumps:    buildOrderBumps(id, form.OrderBumps),
	}

	if err := s.launchRepository.CreateLaunch(ctx, launch); err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar lançamento no banco de dados")
	}

	logrus.Infof("Lançamento %s criado: meta de %d ingressos, CPA máximo %.2f", launch.ID, launch.TargetTickets, launch.MaxCPA)

	return launch, nil
}

// buildBatches materializa a escada de lotes: o primeiro abre ativo e os
// demais aguardam a virada
func buildBatches(launchID string, batches []domain.BatchConfig) []domain.TicketBatch {
	result := make([]domain.TicketBatch, 0, len(batches))
	for _, b := range batches {
		status := "upcoming"
		if b.Order == 1 {
			status = "active"
		}

		result = append(result, domain.TicketBatch{
			LaunchID: launchID,
			Name:     b.Name,
			Order:    b.Order,
			Price:    b.Price,
			Quantity: b.Quantity,
			Status:   status,
		})
	}
	return result
}

func buildProducts(launchID string, form *domain.LaunchFormData) []domain.Product {
	products := []domain.Product{
		{LaunchID: launchID, Type: domain.ProductTypeMain, Name: form.MainProduct.Name, Price: form.MainProduct.Price},
	}

	if form.Downsell.Enabled {
		products = append(products, domain.Product{LaunchID: launchID, Type: domain.ProductTypeDownsell, Name: form.Downsell.Name, Price: form.Downsell.Price})
	}

	if form.Tripwire.Enabled {
		products = append(products, domain.Product{LaunchID: launchID, Type: domain.ProductTypeTripwire, Name: form.Tripwire.Name, Price: form.Tripwire.Price})
	}

	return products
}

// buildOrderBumps monta os bumps habilitados. Somente o bump de gravações
// pode carregar cashback, no valor do próprio bump
func buildOrderBumps(launchID string, input domain.OrderBumpsInput) []domain.OrderBump {
	bumps := []struct {
		name  string
		input domain.OrderBumpInput
	}{
		{"gravacoes", input.Gravacoes},
		{"debriefing", input.Debriefing},
		{"materiais", input.Materiais},
		{"combo", input.Combo},
	}

	var result []domain.OrderBump
	for _, b := range bumps {
		if !b.input.Enabled {
			continue
		}

		hasCashback := b.name == "gravacoes" && b.input.HasCashback
		cashbackAmount := 0.0
		if hasCashback {
			cashbackAmount = b.input.Price
		}

		result = append(result, domain.OrderBump{
			LaunchID:       launchID,
			Name:           b.name,
			Label:          orderBumpLabels[b.name],
			Price:          b.input.Price,
			HasCashback:    hasCashback,
			CashbackAmount: cashbackAmount,
		})
	}

	return result
}

func (s *Service) GetLaunch(launchID string) (*domain.Launch, error) {
	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewLaunchError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	return launch, nil
}

func (s *Service) ListLaunches(statuses []domain.LaunchStatus) ([]*domain.Launch, error) {
	launches, err := s.launchRepository.ListLaunches(statuses)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lançamentos no banco de dados")
	}

	return launches, nil
}

// UpdateLaunch aplica uma atualização parcial. Quando meta, verba ou janela
// de vendas mudam, CPA máximo e ritmo diário são recalculados
func (s *Service) UpdateLaunch(request *domain.UpdateLaunchRequest) (*domain.Launch, error) {
	launch, err := s.launchRepository.GetLaunchByID(request.ID)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewLaunchError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	if request.Name != nil {
		launch.Name = *request.Name
	}
	if request.Niche != nil {
		launch.Niche = *request.Niche
	}
	if request.Expert != nil {
		launch.Expert = *request.Expert
	}
	if request.Followers != nil {
		launch.Followers = *request.Followers
	}
	if request.TargetTickets != nil {
		launch.TargetTickets = *request.TargetTickets
	}
	if request.Budget != nil {
		launch.Budget = *request.Budget
	}
	if request.SaleDays != nil {
		launch.SaleDays = *request.SaleDays
	}
	if request.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *request.EventDate)
		if err != nil {
			return nil, NewLaunchError(ErrInvalidEventDate, apiErrors.ErrInvalidFormat, "Data do evento inválida, use o formato AAAA-MM-DD")
		}
		launch.EventDate = eventDate
	}
	if request.BigIdea != nil {
		launch.BigIdea = *request.BigIdea
	}
	if request.Narrative != nil {
		launch.Narrative = *request.Narrative
	}
	if request.Theme != nil {
		launch.Theme = *request.Theme
	}
	if request.Status != nil {
		status := domain.LaunchStatus(*request.Status)
		switch status {
		case domain.LaunchStatusDraft, domain.LaunchStatusActive, domain.LaunchStatusFinished, domain.LaunchStatusArchived:
			launch.Status = status
		default:
			return nil, NewLaunchError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "Status de lançamento inválido")
		}
	}

	if request.TargetTickets != nil || request.Budget != nil || request.SaleDays != nil {
		trafficTickets := int(math.Round(float64(launch.TargetTickets) * TrafficTicketsRate))
		launch.MaxCPA = calculating.CalculateMaxCPA(launch.Budget, trafficTickets).MaxCPA
		launch.DailyPacing = calculating.CalculatePacing(launch.TargetTickets, launch.SaleDays).PacingTotal
	}

	if err := s.launchRepository.UpdateLaunch(launch); err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar lançamento no banco de dados")
	}

	return launch, nil
}

func (s *Service) DeleteLaunch(ctx context.Context, launchID string) error {
	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return NewLaunchError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	if err := s.launchRepository.DeleteLaunch(ctx, launchID); err != nil {
		return NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir lançamento no banco de dados")
	}

	logrus.Infof("Lançamento %s excluído", launchID)

	return nil
}

// GetMetrics recalcula as métricas financeiras do lançamento a partir do
// estado atual dos lotes, produtos e bumps
func (s *Service) GetMetrics(launchID string) (*domain.LaunchMetrics, error) {
	launch, err := s.GetLaunch(launchID)
	if err != nil {
		return nil, err
	}

	batchConfigs := make([]domain.BatchConfig, 0, len(launch.TicketBatches))
	for _, b := range launch.TicketBatches {
		batchConfigs = append(batchConfigs, domain.BatchConfig{
			Name:     b.Name,
			Order:    b.Order,
			Price:    b.Price,
			Quantity: b.Quantity,
		})
	}

	avgTicket := calculating.CalculateAvgTicket(batchConfigs)
	trafficTickets := int(math.Round(float64(launch.TargetTickets) * TrafficTicketsRate))

	projection := calculating.CalculateProjection(calculating.ProjectionInput{
		TargetTickets:      launch.TargetTickets,
		AvgTicket:          avgTicket,
		Budget:             launch.Budget,
		OrderBumpRate:      calculating.DefaultOrderBumpRate,
		AvgOrderBumpPrice:  avgOrderBumpPrice(launch.OrderBumps),
		ProductConversion:  calculating.DefaultProductConversion,
		ProductPrice:       productPrice(launch.Products, domain.ProductTypeMain, calculating.DefaultProductPrice),
		DownsellConversion: calculating.DefaultDownsellConversion,
		DownsellPrice:      productPrice(launch.Products, domain.ProductTypeDownsell, calculating.DefaultDownsellPrice),
	})

	return &domain.LaunchMetrics{
		LaunchID:   launch.ID,
		MaxCPA:     calculating.CalculateMaxCPA(launch.Budget, trafficTickets),
		Pacing:     calculating.CalculatePacing(launch.TargetTickets, launch.SaleDays),
		AvgTicket:  avgTicket,
		Batches:    calculating.CalculateBatches(batchConfigs),
		Projection: projection,
	}, nil
}

func productPrice(products []domain.Product, productType domain.ProductType, fallback float64) float64 {
	for _, p := range products {
		if p.Type == productType {
			return p.Price
		}
	}
	return fallback
}

func avgOrderBumpPrice(bumps []domain.OrderBump) float64 {
	if len(bumps) == 0 {
		return calculating.DefaultOrderBumpPrice
	}

	var total float64
	for _, b := range bumps {
		total += b.Price
	}
	return total / float64(len(bumps))
}
