package contenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai"
	openaimocks "github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testLaunch() *domain.Launch {
	return &domain.Launch{
		ID:            "LNC001",
		Name:          "Imersão Identidade Visual",
		Niche:         "Design",
		Expert:        "Especialista",
		BigIdea:       "Identidade visual que vende",
		EventDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EventPlatform: "Zoom",
		TicketBatches: []domain.TicketBatch{
			{Order: 2, Price: 127},
			{Order: 1, Price: 97},
		},
		Products: []domain.Product{
			{Type: domain.ProductTypeMain, Name: "Mentoria Black", Price: 4997},
		},
	}
}

func TestBuildUserPrompt(t *testing.T) {
	ctx := buildLaunchContext(testLaunch())

	assert.Equal(t, 97.0, ctx.TicketPrice)
	assert.Equal(t, "Mentoria Black", ctx.ProductName)
	assert.Equal(t, "2025-06-15", ctx.EventDate)

	t.Run("Subtipo conhecido usa a instrução do catálogo", func(t *testing.T) {
		prompt := buildUserPrompt(ctx, domain.ContentTypeEmails, "virada_lote", "")

		assert.Contains(t, prompt, "CONTEXTO DO LANÇAMENTO:")
		assert.Contains(t, prompt, "Imersão Identidade Visual")
		assert.Contains(t, prompt, "EMAIL DE VIRADA DE LOTE")
		assert.Contains(t, prompt, "português brasileiro")
		assert.NotContains(t, prompt, "INSTRUÇÕES ADICIONAIS")
	})

	t.Run("Subtipo desconhecido usa instrução genérica", func(t *testing.T) {
		prompt := buildUserPrompt(ctx, domain.ContentTypeEmails, "inexistente", "")
		assert.Contains(t, prompt, "Gere conteúdo do tipo emails - inexistente")
	})

	t.Run("Instruções adicionais entram no prompt", func(t *testing.T) {
		prompt := buildUserPrompt(ctx, domain.ContentTypeStories, "countdown", "Cite o bônus do primeiro lote")
		assert.Contains(t, prompt, "INSTRUÇÕES ADICIONAIS: Cite o bônus do primeiro lote")
	})

	t.Run("Campos de narrativa vazios viram placeholders", func(t *testing.T) {
		prompt := buildUserPrompt(ctx, domain.ContentTypeEmails, "conteudo", "")
		assert.Contains(t, prompt, "Narrativa: Não definida")
		assert.Contains(t, prompt, "Tema: Não definido")
	})
}

func TestContentTemplates(t *testing.T) {
	assert.Len(t, ContentTemplates, 7)

	// Todo subtipo do catálogo tem instrução de geração dedicada
	for _, template := range ContentTemplates {
		assert.NotEmpty(t, template.Subtypes, "template %s sem subtipos", template.Type)
		for _, sub := range template.Subtypes {
			key := string(template.Type) + "_" + sub.Value
			_, ok := typePrompts[key]
			assert.True(t, ok, "subtipo sem prompt: %s", key)
		}
	}
}

func TestService_GenerateContent(t *testing.T) {
	t.Run("Gera e persiste a copy com o contexto do lançamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		contentRepo := mocks.NewMockContentRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		openaiService := openaimocks.NewMockOpenAIIntegrator(ctrl)
		service := NewService(launchRepo, contentRepo, commRepo, openaiService)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(testLaunch(), nil)
		openaiService.EXPECT().
			GenerateCopy(gomock.Any(), gomock.Any()).
			DoAndReturn(func(system, user string) (*openai.CompletionResult, error) {
				assert.Contains(t, system, "lançamentos pagos")
				assert.Contains(t, user, "Imersão Identidade Visual")
				assert.Contains(t, user, "EMAIL DE ABERTURA DE VENDAS")
				return &openai.CompletionResult{Content: "# Email de abertura", TokensUsed: 1234}, nil
			})
		contentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(content *domain.GeneratedContent) error {
			assert.Equal(t, "LNC001", content.LaunchID)
			assert.Equal(t, domain.ContentTypeEmails, content.Type)
			assert.Equal(t, "lancamento", content.Subtype)
			assert.Equal(t, "# Email de abertura", content.Content)
			assert.False(t, content.IsApproved)
			return nil
		})

		result, err := service.GenerateContent("LNC001", &domain.GenerateContentRequest{
			Type:    domain.ContentTypeEmails,
			Subtype: "lancamento",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1234, result.TokensUsed)
		assert.NotEmpty(t, result.Content.ID)
	})

	t.Run("Tipo desconhecido - retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockLaunchRepository(ctrl),
			mocks.NewMockContentRepository(ctrl),
			mocks.NewMockCommunicationRepository(ctrl),
			openaimocks.NewMockOpenAIIntegrator(ctrl),
		)

		_, err := service.GenerateContent("LNC001", &domain.GenerateContentRequest{Type: "videos"})
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("Falha na OpenAI - retorna erro de serviço externo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		openaiService := openaimocks.NewMockOpenAIIntegrator(ctrl)
		service := NewService(launchRepo, mocks.NewMockContentRepository(ctrl), mocks.NewMockCommunicationRepository(ctrl), openaiService)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(testLaunch(), nil)
		openaiService.EXPECT().GenerateCopy(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := service.GenerateContent("LNC001", &domain.GenerateContentRequest{
			Type:    domain.ContentTypeEmails,
			Subtype: "lancamento",
		})

		assert.ErrorIs(t, err, ErrGenerationFailed)
	})
}

func TestService_UpdateContent(t *testing.T) {
	approved := true
	notApproved := false
	commID := "COM001"
	previousContentID := "CNT000"

	content := func() *domain.GeneratedContent {
		return &domain.GeneratedContent{
			ID:       "CNT001",
			LaunchID: "LNC001",
			Content:  "Copy gerada",
		}
	}

	t.Run("Aprovar com vínculo troca a copy da ação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contentRepo := mocks.NewMockContentRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		service := NewService(mocks.NewMockLaunchRepository(ctrl), contentRepo, commRepo, openaimocks.NewMockOpenAIIntegrator(ctrl))

		contentRepo.EXPECT().GetByID("CNT001").Return(content(), nil)
		commRepo.EXPECT().GetByID("COM001").Return(&domain.Communication{
			ID:                "COM001",
			ApprovedContentID: &previousContentID,
		}, nil)
		contentRepo.EXPECT().SetApproval(previousContentID, false).Return(nil)
		contentRepo.EXPECT().SetApproval("CNT001", true).Return(nil)
		commRepo.EXPECT().SetApprovedContent("COM001", gomock.Any(), "Copy gerada").Return(nil)

		err := service.UpdateContent(&domain.UpdateContentRequest{
			ContentID:       "CNT001",
			CommunicationID: &commID,
			IsApproved:      &approved,
		})

		assert.NoError(t, err)
	})

	t.Run("Desaprovar desfaz o vínculo com o cronograma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contentRepo := mocks.NewMockContentRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		service := NewService(mocks.NewMockLaunchRepository(ctrl), contentRepo, commRepo, openaimocks.NewMockOpenAIIntegrator(ctrl))

		contentRepo.EXPECT().GetByID("CNT001").Return(content(), nil)
		contentRepo.EXPECT().SetApproval("CNT001", false).Return(nil)
		commRepo.EXPECT().ClearApprovedContent("CNT001").Return(nil)

		err := service.UpdateContent(&domain.UpdateContentRequest{
			ContentID:  "CNT001",
			IsApproved: &notApproved,
		})

		assert.NoError(t, err)
	})

	t.Run("Conteúdo inexistente - retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contentRepo := mocks.NewMockContentRepository(ctrl)
		service := NewService(mocks.NewMockLaunchRepository(ctrl), contentRepo, mocks.NewMockCommunicationRepository(ctrl), openaimocks.NewMockOpenAIIntegrator(ctrl))

		contentRepo.EXPECT().GetByID("CNT404").Return(nil, nil)

		err := service.UpdateContent(&domain.UpdateContentRequest{ContentID: "CNT404", IsApproved: &approved})
		assert.ErrorIs(t, err, ErrContentNotFound)
	})
}

func TestService_DeleteContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contentRepo := mocks.NewMockContentRepository(ctrl)
	commRepo := mocks.NewMockCommunicationRepository(ctrl)
	service := NewService(mocks.NewMockLaunchRepository(ctrl), contentRepo, commRepo, openaimocks.NewMockOpenAIIntegrator(ctrl))

	contentRepo.EXPECT().GetByID("CNT001").Return(&domain.GeneratedContent{ID: "CNT001"}, nil)
	commRepo.EXPECT().ClearApprovedContent("CNT001").Return(nil)
	contentRepo.EXPECT().Delete("CNT001").Return(nil)

	err := service.DeleteContent("CNT001")
	assert.NoError(t, err)
}
