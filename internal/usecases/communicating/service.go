package communicating

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

type CommunicationService interface {
	GetCalendar(launchID string) ([]domain.CommunicationDay, error)
	InitializeCommunications(launchID string) (*InitializeResult, error)
	ListByLaunch(launchID string) ([]*domain.Communication, error)
	UpdateCommunication(request *domain.UpdateCommunicationRequest) (*domain.Communication, error)
}

// InitializeResult resume o resultado da inicialização do cronograma
type InitializeResult struct {
	LaunchID string `json:"launch_id"`
	Created  int    `json:"created"`
	Message  string `json:"message"`
}

type Service struct {
	launchRepository        repository.LaunchRepository
	communicationRepository repository.CommunicationRepository
	contentRepository       repository.ContentRepository
}

func NewService(
	launchRepository repository.LaunchRepository,
	communicationRepository repository.CommunicationRepository,
	contentRepository repository.ContentRepository,
) CommunicationService {
	return &Service{
		launchRepository:        launchRepository,
		communicationRepository: communicationRepository,
		contentRepository:       contentRepository,
	}
}

// GetCalendar monta o cronograma de 44 dias a partir da data do evento,
// sem persistir nada
func (s *Service) GetCalendar(launchID string) ([]domain.CommunicationDay, error) {
	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewCommunicationError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	return GenerateCalendar(launch.EventDate), nil
}

// InitializeCommunications materializa o cronograma do lançamento como
// linhas pendentes. A operação é idempotente: se o lançamento já tem
// comunicações, nada é criado
func (s *Service) InitializeCommunications(launchID string) (*InitializeResult, error) {
	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewCommunicationError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	count, err := s.communicationRepository.CountByLaunchID(launchID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao contar comunicações existentes")
	}

	if count > 0 {
		logrus.Infof("Cronograma do lançamento %s já inicializado com %d comunicações", launchID, count)
		return &InitializeResult{
			LaunchID: launchID,
			Created:  0,
			Message:  "Cronograma já inicializado",
		}, nil
	}

	days := GenerateCalendar(launch.EventDate)

	var comms []*domain.Communication
	for _, day := range days {
		for _, action := range day.Actions {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar ID da comunicação")
			}

			comms = append(comms, &domain.Communication{
				ID:       id,
				LaunchID: launchID,
				Day:      day.Day,
				Date:     day.Date,
				Channel:  action.Channel,
				Type:     action.Type,
				Title:    action.Title,
				Content:  action.Description,
				Status:   domain.CommunicationStatusPending,
			})
		}
	}

	if err := s.communicationRepository.CreateMany(comms); err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar comunicações no banco de dados")
	}

	logrus.Infof("Cronograma do lançamento %s inicializado com %d comunicações", launchID, len(comms))

	return &InitializeResult{
		LaunchID: launchID,
		Created:  len(comms),
		Message:  "Cronograma inicializado",
	}, nil
}

func (s *Service) ListByLaunch(launchID string) ([]*domain.Communication, error) {
	comms, err := s.communicationRepository.ListByLaunchID(launchID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar comunicações no banco de dados")
	}

	return comms, nil
}

// UpdateCommunication altera o status de uma ação do cronograma e/ou
// vincula um conteúdo gerado aprovado. Ao trocar o vínculo, o conteúdo
// anterior volta para não aprovado
func (s *Service) UpdateCommunication(request *domain.UpdateCommunicationRequest) (*domain.Communication, error) {
	comm, err := s.communicationRepository.GetByID(request.CommunicationID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comunicação no banco de dados")
	}
	if comm == nil {
		return nil, NewCommunicationError(ErrCommunicationNotFound, apiErrors.ErrResourceNotFound, "Comunicação não encontrada")
	}

	if request.Status != nil {
		if *request.Status != domain.CommunicationStatusPending && *request.Status != domain.CommunicationStatusApproved {
			return nil, NewCommunicationError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "Status de comunicação inválido")
		}

		if err := s.communicationRepository.UpdateStatus(comm.ID, *request.Status); err != nil {
			return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status da comunicação")
		}
	}

	if request.ApprovedContentID != nil {
		if err := s.linkApprovedContent(comm, *request.ApprovedContentID); err != nil {
			return nil, err
		}
	}

	updated, err := s.communicationRepository.GetByID(comm.ID)
	if err != nil {
		return nil, NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comunicação atualizada")
	}

	return updated, nil
}

func (s *Service) linkApprovedContent(comm *domain.Communication, contentID string) error {
	content, err := s.contentRepository.GetByID(contentID)
	if err != nil {
		return NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conteúdo gerado")
	}
	if content == nil {
		return NewCommunicationError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Conteúdo gerado não encontrado")
	}

	// Desaprova o conteúdo anteriormente vinculado a esta ação
	if comm.ApprovedContentID != nil && *comm.ApprovedContentID != contentID {
		if err := s.contentRepository.SetApproval(*comm.ApprovedContentID, false); err != nil {
			logrus.Warnf("Erro ao desaprovar conteúdo anterior %s: %v", *comm.ApprovedContentID, err)
		}
	}

	if err := s.contentRepository.SetApproval(contentID, true); err != nil {
		return NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao aprovar conteúdo gerado")
	}

	if err := s.communicationRepository.SetApprovedContent(comm.ID, &contentID, content.Content); err != nil {
		return NewCommunicationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao vincular conteúdo à comunicação")
	}

	return nil
}
