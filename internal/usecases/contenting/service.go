// Package contenting gera e administra as copys de marketing produzidas
// por IA para um lançamento
package contenting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

type ContentService interface {
	ListTemplates() []domain.ContentTemplate
	GenerateContent(launchID string, request *domain.GenerateContentRequest) (*GenerateResult, error)
	ListByLaunch(launchID string) ([]*domain.GeneratedContent, error)
	UpdateContent(request *domain.UpdateContentRequest) error
	DeleteContent(contentID string) error
}

// GenerateResult é a copy recém gerada e o consumo de tokens da chamada
type GenerateResult struct {
	Content    *domain.GeneratedContent `json:"content"`
	TokensUsed int                      `json:"tokens_used"`
}

type Service struct {
	launchRepository        repository.LaunchRepository
	contentRepository       repository.ContentRepository
	communicationRepository repository.CommunicationRepository
	openaiService           openai.OpenAIIntegrator
}

func NewService(
	launchRepository repository.LaunchRepository,
	contentRepository repository.ContentRepository,
	communicationRepository repository.CommunicationRepository,
	openaiService openai.OpenAIIntegrator,
) ContentService {
	return &Service{
		launchRepository:        launchRepository,
		contentRepository:       contentRepository,
		communicationRepository: communicationRepository,
		openaiService:           openaiService,
	}
}

func (s *Service) ListTemplates() []domain.ContentTemplate {
	return ContentTemplates
}

// GenerateContent monta o prompt com o contexto do lançamento, chama a IA
// e persiste a copy gerada
func (s *Service) GenerateContent(launchID string, request *domain.GenerateContentRequest) (*GenerateResult, error) {
	if !validContentType(request.Type) {
		return nil, NewContentError(ErrInvalidType, apiErrors.ErrInvalidRequest, "Tipo de conteúdo desconhecido")
	}

	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewContentError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	launchContext := buildLaunchContext(launch)
	userPrompt := buildUserPrompt(launchContext, request.Type, request.Subtype, request.CustomInstructions)

	result, err := s.openaiService.GenerateCopy(systemPrompt, userPrompt)
	if err != nil {
		logrus.Errorf("Erro ao gerar conteúdo %s_%s para o lançamento %s: %v", request.Type, request.Subtype, launchID, err)
		return nil, NewContentError(ErrGenerationFailed, apiErrors.ErrExternalService, "Falha ao gerar conteúdo na OpenAI")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar ID do conteúdo")
	}

	content := &domain.GeneratedContent{
		ID:       id,
		LaunchID: launchID,
		Type:     request.Type,
		Subtype:  request.Subtype,
		Content:  result.Content,
	}

	if err := s.contentRepository.Create(content); err != nil {
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conteúdo no banco de dados")
	}

	logrus.Infof("Conteúdo %s_%s gerado para o lançamento %s (%d tokens)", request.Type, request.Subtype, launchID, result.TokensUsed)

	return &GenerateResult{
		Content:    content,
		TokensUsed: result.TokensUsed,
	}, nil
}

func (s *Service) ListByLaunch(launchID string) ([]*domain.GeneratedContent, error) {
	contents, err := s.contentRepository.ListByLaunchID(launchID)
	if err != nil {
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar conteúdos no banco de dados")
	}

	return contents, nil
}

// UpdateContent aprova ou desaprova uma copy. Aprovar junto com uma ação do
// cronograma vincula a copy à ação, desaprovando a que estava vinculada;
// desaprovar desfaz qualquer vínculo existente
func (s *Service) UpdateContent(request *domain.UpdateContentRequest) error {
	content, err := s.contentRepository.GetByID(request.ContentID)
	if err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conteúdo no banco de dados")
	}
	if content == nil {
		return NewContentError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Conteúdo não encontrado")
	}

	approved := request.IsApproved != nil && *request.IsApproved

	if approved && request.CommunicationID != nil {
		return s.approveAndLink(content, *request.CommunicationID)
	}

	if request.IsApproved != nil && !*request.IsApproved {
		if err := s.contentRepository.SetApproval(content.ID, false); err != nil {
			return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desaprovar conteúdo")
		}
		if err := s.communicationRepository.ClearApprovedContent(content.ID); err != nil {
			return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desvincular conteúdo do cronograma")
		}
		return nil
	}

	if err := s.contentRepository.SetApproval(content.ID, approved); err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar aprovação do conteúdo")
	}

	return nil
}

func (s *Service) approveAndLink(content *domain.GeneratedContent, communicationID string) error {
	comm, err := s.communicationRepository.GetByID(communicationID)
	if err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar ação do cronograma")
	}
	if comm == nil {
		return NewContentError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Ação do cronograma não encontrada")
	}

	// A ação só carrega uma copy aprovada por vez
	if comm.ApprovedContentID != nil && *comm.ApprovedContentID != content.ID {
		if err := s.contentRepository.SetApproval(*comm.ApprovedContentID, false); err != nil {
			logrus.Warnf("Erro ao desaprovar conteúdo anterior %s: %v", *comm.ApprovedContentID, err)
		}
	}

	if err := s.contentRepository.SetApproval(content.ID, true); err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao aprovar conteúdo")
	}

	if err := s.communicationRepository.SetApprovedContent(comm.ID, &content.ID, content.Content); err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao vincular conteúdo à ação do cronograma")
	}

	return nil
}

func (s *Service) DeleteContent(contentID string) error {
	content, err := s.contentRepository.GetByID(contentID)
	if err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conteúdo no banco de dados")
	}
	if content == nil {
		return NewContentError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Conteúdo não encontrado")
	}

	// Remove o vínculo antes de excluir a copy
	if err := s.communicationRepository.ClearApprovedContent(contentID); err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desvincular conteúdo do cronograma")
	}

	if err := s.contentRepository.Delete(contentID); err != nil {
		return NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao excluir conteúdo")
	}

	return nil
}

func validContentType(contentType domain.ContentType) bool {
	for _, t := range ContentTemplates {
		if t.Type == contentType {
			return true
		}
	}
	return false
}
