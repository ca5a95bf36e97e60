package contenting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/launch-planner-api/internal/domain"
)

// buildLaunchContext recorta do lançamento os dados que entram no prompt.
// O preço do ingresso é o do primeiro lote; o produto principal dá nome e
// preço ao high ticket
func buildLaunchContext(launch *domain.Launch) domain.LaunchContext {
	ctx := domain.LaunchContext{
		Name:          launch.Name,
		Niche:         launch.Niche,
		Expert:        launch.Expert,
		BigIdea:       launch.BigIdea,
		Narrative:     launch.Narrative,
		Theme:         launch.Theme,
		EventDate:     launch.EventDate.Format(time.DateOnly),
		EventPlatform: launch.EventPlatform,
	}

	for _, b := range launch.TicketBatches {
		if b.Order == 1 {
			ctx.TicketPrice = b.Price
			break
		}
	}

	for _, p := range launch.Products {
		if p.Type == domain.ProductTypeMain {
			ctx.ProductName = p.Name
			ctx.ProductPrice = p.Price
			break
		}
	}

	return ctx
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// buildUserPrompt monta o prompt de geração: contexto do lançamento, a
// instrução do subtipo e as instruções extras do usuário
func buildUserPrompt(ctx domain.LaunchContext, contentType domain.ContentType, subtype, customInstructions string) string {
	promptKey := fmt.Sprintf("%s_%s", contentType, subtype)
	typePrompt, ok := typePrompts[promptKey]
	if !ok {
		typePrompt = fmt.Sprintf("Gere conteúdo do tipo %s - %s", contentType, subtype)
	}

	var sb strings.Builder
	sb.WriteString("CONTEXTO DO LANÇAMENTO:\n")
	sb.WriteString(fmt.Sprintf("- Nome: %s\n", ctx.Name))
	sb.WriteString(fmt.Sprintf("- Nicho: %s\n", ctx.Niche))
	sb.WriteString(fmt.Sprintf("- Expert: %s\n", ctx.Expert))
	sb.WriteString(fmt.Sprintf("- Big Idea: %s\n", orDefault(ctx.BigIdea, "Não definida")))
	sb.WriteString(fmt.Sprintf("- Narrativa: %s\n", orDefault(ctx.Narrative, "Não definida")))
	sb.WriteString(fmt.Sprintf("- Tema: %s\n", orDefault(ctx.Theme, "Não definido")))
	sb.WriteString(fmt.Sprintf("- Ticket: R$%.2f\n", ctx.TicketPrice))
	sb.WriteString(fmt.Sprintf("- Produto Principal: %s (R$%.2f)\n", ctx.ProductName, ctx.ProductPrice))
	sb.WriteString(fmt.Sprintf("- Data do Evento: %s\n", ctx.EventDate))
	sb.WriteString(fmt.Sprintf("- Plataforma: %s\n", ctx.EventPlatform))
	sb.WriteString("\n")
	sb.WriteString(typePrompt)
	sb.WriteString("\n")

	if strings.TrimSpace(customInstructions) != "" {
		sb.WriteString(fmt.Sprintf("\nINSTRUÇÕES ADICIONAIS: %s\n", customInstructions))
	}

	sb.WriteString("\nResponda em português brasileiro. Formate com markdown.")

	return sb.String()
}
