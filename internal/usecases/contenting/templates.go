package contenting

import "github.com/vfg2006/launch-planner-api/internal/domain"

// systemPrompt ancora o tom e as regras de copy de todo conteúdo gerado
const systemPrompt = "Você é um especialista em lançamentos pagos, treinado na metodologia Willian Baldan.\n\nREGRAS ABSOLUTAS DE COPY:\n- NUNCA use a palavra \"aprenda\" — substitua por FAÇA, CRIE, CONSTRUA, DOMINE, IMPLEMENTE\n- NUNCA use \"replay\" — use \"acesso em formato de aulas\" ou \"gravações organizadas\"\n- NUNCA use gerúndio extenso — prefira imperativo direto\n- Use o Framework C7: Clareza, Curiosidade, Conexão, Credibilidade, Controvérsia, CTA, Consistência\n- Escassez REAL (lotes, vagas, datas) — nunca escassez falsa\n- Tom: direto, confiante, orientado à ação\n- Números específicos > promessas genéricas\n- Prova social com resultados reais sempre que possível\n\nESTRUTURA DE LANÇAMENTO PAGO:\n- Evento imersivo presencial/online (ingresso pago R$47-497)\n- Order bumps: gravações, debriefing, materiais\n- Cashback: quem compra gravações recebe desconto no high ticket\n- High ticket vendido NO EVENTO (15-33% conversão)\n- 7-9 lotes com escassez progressiva\n- 44 dias de comunicação estruturada\n"

// ContentTemplates é o catálogo de tipos e subtipos de conteúdo que a
// interface oferece para geração
var ContentTemplates = []domain.ContentTemplate{
	{
		Type:        domain.ContentTypeEmails,
		Label:       "Emails",
		Description: "Abertura, conteúdo, prova social, virada de lote, lembretes, evento, pós-evento, urgência, encerramento",
		Subtypes: []domain.ContentSubtype{
			{Value: "lancamento", Label: "Abertura de Vendas", Description: "Email de abertura do primeiro lote"},
			{Value: "conteudo", Label: "Conteúdo + Valor", Description: "Email de conteúdo educativo com sutileza sobre o evento"},
			{Value: "prova_social", Label: "Prova Social", Description: "Email com depoimentos e resultados de alunos"},
			{Value: "virada_lote", Label: "Virada de Lote", Description: "Email de urgência na virada de lote"},
			{Value: "lembrete", Label: "Lembretes Pré-Evento", Description: "Emails de lembrete D-7, D-3 e D-1"},
			{Value: "evento", Label: "Dia do Evento", Description: "Email da manhã do evento com link e motivação"},
			{Value: "pos_evento", Label: "Pós-Evento / Carrinho", Description: "Email de carrinho aberto para high ticket"},
			{Value: "follow_up", Label: "Follow-up", Description: "Email de follow-up D+1 com prova social"},
			{Value: "urgencia", Label: "Urgência (Últimas 24h)", Description: "Email de últimas 24h com FOMO real"},
			{Value: "encerramento", Label: "Encerramento", Description: "Email de encerramento final — últimas 2h"},
		},
	},
	{
		Type:        domain.ContentTypeWhatsApp,
		Label:       "WhatsApp",
		Description: "Base, conteúdo, lembretes, evento, urgência, pós-evento, follow-up, encerramento",
		Subtypes: []domain.ContentSubtype{
			{Value: "base", Label: "Base Existente", Description: "Mensagem para lista existente sobre o evento"},
			{Value: "conteudo", Label: "Conteúdo para Base", Description: "Conteúdo relevante para quem está no grupo"},
			{Value: "urgencia", Label: "Últimas Vagas do Lote", Description: "Mensagem de urgência — últimas vagas"},
			{Value: "lembrete", Label: "Lembretes Pré-Evento", Description: "Lembretes D-7 e D-1 com link e horário"},
			{Value: "evento", Label: "Dia do Evento", Description: "Mensagem 30min antes com link"},
			{Value: "pos_evento", Label: "Pós-Evento / Oferta", Description: "Oferta com cashback para quem comprou gravações"},
			{Value: "follow_up", Label: "Follow-up", Description: "Acompanhamento pós-evento"},
			{Value: "encerramento", Label: "Encerramento", Description: "Última mensagem de encerramento das vendas"},
		},
	},
	{
		Type:        domain.ContentTypeInstagram,
		Label:       "Instagram (Feed)",
		Description: "Posts de abertura, conteúdo educativo, reels, encerramento",
		Subtypes: []domain.ContentSubtype{
			{Value: "post", Label: "Post Feed", Description: "Legenda para post no feed (abertura, amanhã, encerramento)"},
			{Value: "conteudo", Label: "Post de Valor/Desejo", Description: "Post de conteúdo que gera desejo pelo evento"},
			{Value: "reels", Label: "Reels", Description: "Roteiro curto para reels (30-60s)"},
		},
	},
	{
		Type:        domain.ContentTypeStories,
		Label:       "Stories",
		Description: "Bastidores, prova social, countdown, urgência, ao vivo, oferta",
		Subtypes: []domain.ContentSubtype{
			{Value: "conteudo", Label: "Bastidores / Antecipação", Description: "Stories de bastidores e preparação do evento"},
			{Value: "social_proof", Label: "Prova Social", Description: "Stories com depoimentos, números e resultados"},
			{Value: "urgencia", Label: "Urgência", Description: "Stories de urgência — countdown virada de lote ou encerramento"},
			{Value: "countdown", Label: "Contagem Regressiva", Description: "Stories de countdown para o evento"},
			{Value: "live", Label: "Ao Vivo do Evento", Description: "Roteiro de stories ao vivo durante o evento"},
			{Value: "oferta", Label: "Oferta High Ticket", Description: "Stories de oferta pós-evento"},
		},
	},
	{
		Type:        domain.ContentTypeAds,
		Label:       "Ads / Tráfego",
		Description: "Briefing de campanhas e criativos para tráfego pago",
		Subtypes: []domain.ContentSubtype{
			{Value: "campanha", Label: "Briefing de Campanha", Description: "Briefing completo para campanha de tráfego"},
			{Value: "otimizacao", Label: "Checklist Otimização", Description: "Checklist de otimização semanal de campanhas"},
		},
	},
	{
		Type:        domain.ContentTypeCopyPagina,
		Label:       "Copy Página de Vendas",
		Description: "Página completa, hook, seção de oferta",
		Subtypes: []domain.ContentSubtype{
			{Value: "completa", Label: "Página Completa", Description: "Copy completa da página de vendas"},
			{Value: "hook", Label: "Apenas Hook", Description: "5 variações de headline e sub-headline"},
			{Value: "oferta", Label: "Seção de Oferta", Description: "Apresentação da oferta com lotes e bumps"},
		},
	},
	{
		Type:        domain.ContentTypeScripts,
		Label:       "Scripts Comerciais",
		Description: "Abordagem, follow-up, downsell, boleto",
		Subtypes: []domain.ContentSubtype{
			{Value: "abordagem_cashback", Label: "Abordagem Cashback", Description: "Script para oferecer cashback das gravações"},
			{Value: "follow_up", Label: "Follow-up Comercial", Description: "Script de acompanhamento pós-interesse"},
			{Value: "downsell", Label: "Downsell", Description: "Script para oferecer versão mais acessível"},
			{Value: "boleto", Label: "Recuperação Boleto", Description: "Script para recuperar boletos não pagos"},
		},
	},
}

// typePrompts mapeia tipo_subtipo para a instrução de geração. Subtipos
// fora do mapa recebem uma instrução genérica
var typePrompts = map[string]string{
	"emails_lancamento": "Crie o EMAIL DE ABERTURA DE VENDAS do evento.\nEstrutura: Anúncio impactante → O que é o evento → Para quem é → Preço do 1º lote (mais barato) → Escassez real (vagas limitadas) → CTA direto.\nTom: empolgante, direto, urgente.",
	"emails_conteudo": "Crie um EMAIL DE CONTEÚDO + VALOR.\nEstrutura: Hook com insight poderoso → Conteúdo educativo relevante → Conexão sutil com o evento → CTA suave.\nTom: generoso, educativo, sem forçar venda.",
	"emails_prova_social": "Crie um EMAIL DE PROVA SOCIAL com depoimentos e resultados.\nEstrutura: Hook com resultado específico → 2-3 depoimentos reais → O que essas pessoas têm em comum → CTA para garantir vaga.\nTom: inspirador, concreto, com números.",
	"emails_virada_lote": "Crie o EMAIL DE VIRADA DE LOTE:\nEstrutura: Aviso de esgotamento → Novo preço → Cálculo da economia (quem comprar agora economiza R$X) → Countdown → CTA urgente.\nTom: urgente, escassez real.",
	"emails_lembrete": "Crie 3 EMAILS DE LEMBRETE pré-evento:\n1. D-7: Antecipação + o que preparar + cronograma\n2. D-3: Detalhes finais + checklist\n3. D-1: \"Amanhã é o dia!\" + link + motivação\nCada email curto e objetivo.",
	"emails_evento": "Crie o EMAIL DA MANHÃ DO EVENTO.\nEstrutura: Bom dia empolgante → \"Hoje é o dia!\" → Link de acesso → Horário → O que esperar → Motivação final.\nCurto, direto, com link em destaque.",
	"emails_pos_evento": "Crie o EMAIL DE CARRINHO ABERTO (pós-evento) para o high ticket.\nEstrutura: Referência ao que viveram no evento → Apresentação da oferta high ticket → Benefícios → Cashback para quem comprou gravações → Escassez (vagas limitadas) → CTA.\nTom: continuidade do evento, não parecer \"venda fria\".",
	"emails_follow_up": "Crie o EMAIL DE FOLLOW-UP D+1 pós-evento.\nEstrutura: \"Você viu o que aconteceu ontem?\" → Prova social dos primeiros compradores → Depoimentos rápidos → Lembrete da oferta → CTA.\nTom: social proof pesada, urgência sutil.",
	"emails_urgencia": "Crie o EMAIL DE URGÊNCIA (últimas 24h).\nEstrutura: Assunto com urgência real → \"Último dia\" → Resumo da oferta → FOMO (quem já comprou) → Últimas vagas → CTA direto.\nTom: urgente, direto, sem enrolação. Email CURTO.",
	"emails_encerramento": "Crie 2 EMAILS DE ENCERRAMENTO:\n1. Últimas 2h: Email curto, direto, \"encerra em X horas\", CTA final\n2. Encerramento: Agradecimento + resultado final + \"portas fechadas\"\nTom: urgente no primeiro, grato no segundo.",
	"whatsapp_base": "Crie a MENSAGEM PARA BASE EXISTENTE sobre o evento.\nEstrutura: Saudação pessoal → Anúncio do evento → O que é → Link → CTA.\nMáx 200 palavras. Tom: próximo, pessoal, como se falasse com um amigo.",
	"whatsapp_conteudo": "Crie uma MENSAGEM DE CONTEÚDO para o grupo de WhatsApp.\nEstrutura: Insight ou dica relevante → Conexão com o evento → Pergunta para engajar.\nMáx 150 palavras. Tom: casual, educativo.",
	"whatsapp_urgencia": "Crie 2 MENSAGENS DE URGÊNCIA para WhatsApp:\n1. Últimas vagas do lote atual — countdown, escassez real\n2. Encerramento total das vendas — última chance\nCurtas, escassez real, CTA direto. Máx 100 palavras cada.",
	"whatsapp_lembrete": "Crie MENSAGENS DE LEMBRETE para WhatsApp:\n1. D-7: Lembrete + cronograma do evento\n2. D-1: \"Amanhã!\" + link + horário\nCurtas, diretas, com link em destaque. Máx 100 palavras cada.",
	"whatsapp_evento": "Crie a MENSAGEM 30 MINUTOS ANTES do evento.\n\"Começamos em 30 min!\" → Link de acesso → Lembrete de ter caderno/caneta → Motivação curta.\nMáx 80 palavras. Direto ao ponto.",
	"whatsapp_pos_evento": "Crie a MENSAGEM PÓS-EVENTO com oferta.\nEstrutura: \"O que acharam?\" → Oferta do high ticket → Cashback para quem tem gravações → Link → Prazo limitado.\nMáx 200 palavras. Tom: empolgado pelo resultado do evento.",
	"whatsapp_follow_up": "Crie a MENSAGEM DE FOLLOW-UP WhatsApp.\nEstrutura: Check-in → Resultado de quem já comprou → Oferta ainda disponível → CTA.\nMáx 150 palavras. Tom: consultivo, não agressivo.",
	"whatsapp_encerramento": "Crie a MENSAGEM FINAL DE ENCERRAMENTO WhatsApp.\n\"Última mensagem sobre isso\" → Resumo do que perde → CTA final → Agradecimento.\nMáx 120 palavras. Tom: urgente mas respeitoso.",
	"instagram_post": "Crie 3 LEGENDAS PARA POST NO FEED do Instagram (abertura, antecipação, encerramento).\nCada legenda: Hook forte na primeira linha → Corpo → CTA.\nMix: anúncio oficial, \"amanhã é o dia\", agradecimento final.",
	"instagram_conteudo": "Crie 3 LEGENDAS DE POST DE VALOR/DESEJO para o feed.\nCada legenda: Hook → Conteúdo educativo que gera desejo → CTA sutil.\nTom: generoso, valor real, sem forçar venda.",
	"instagram_reels": "Crie 3 ROTEIROS CURTOS para REELS (30-60 segundos).\nEstrutura de cada: Hook (3s) → Conteúdo (20s) → CTA (7s).\nMix: depoimento, resultado, bastidores.",
	"stories_conteudo": "Crie uma sequência de 8 STORIES DE BASTIDORES/ANTECIPAÇÃO.\nCada story: texto principal + CTA + tipo (texto/enquete/caixinha).\nMostrar preparação, bastidores, expectativa.",
	"stories_social_proof": "Crie uma sequência de 6 STORIES DE PROVA SOCIAL.\nCada story: depoimento ou número + contexto + CTA.\nIncluir: prints de mensagens, números de vendas, resultados de alunos.",
	"stories_urgencia": "Crie uma sequência de 5 STORIES DE URGÊNCIA.\nPara virada de lote ou encerramento. Cada story com countdown, escassez real, CTA direto.\nTom: urgente, FOMO, escassez real.",
	"stories_countdown": "Crie uma sequência de 5 STORIES DE CONTAGEM REGRESSIVA para o evento.\nD-7, D-3, D-1, manhã do evento, 30min antes.\nCada story: contexto temporal + expectativa + CTA com link.",
	"stories_live": "Crie o ROTEIRO DE STORIES AO VIVO durante o evento.\n5-8 stories: abertura → bastidores → momento do pitch → reações → encerramento.\nDicas de enquadramento e o que mostrar.",
	"stories_oferta": "Crie uma sequência de 6 STORIES DE OFERTA HIGH TICKET pós-evento.\nEstrutura: recap do evento → oferta → benefícios → cashback → depoimentos → CTA final.\nTom: resultado do evento como prova, oferta como continuidade natural.",
	"ads_campanha": "Crie um BRIEFING COMPLETO para campanhas de tráfego pago:\n1. Objetivo da campanha (conversão/tráfego)\n2. Público-alvo (interesses, lookalike, retargeting)\n3. 3 variações de copy para anúncios (headline + texto + CTA)\n4. Sugestão de criativos (UGC, estático, vídeo expert)\n5. Orçamento sugerido e distribuição\n6. Métricas-alvo (CPA, CTR, CPC)",
	"ads_otimizacao": "Crie um CHECKLIST DE OTIMIZAÇÃO SEMANAL de campanhas:\n1. Métricas para analisar (CPA, CTR, frequência, CPC)\n2. Critérios para pausar criativos\n3. Critérios para escalar criativos\n4. Ajustes de público\n5. Novos testes sugeridos\n6. Ações corretivas por cenário (CPA alto, CTR baixo, etc.)",
	"copy_pagina_completa": "Crie a copy COMPLETA da página de vendas com as seções:\n1. HOOK (headline impactante + sub-headline)\n2. PROBLEMA (dor do público, específica)\n3. MECANISMO ÚNICO (como o evento resolve)\n4. PROVA (resultados, números, depoimentos)\n5. OFERTA (o que está incluído, lotes)\n6. ORDER BUMPS (gravações com cashback, extras)\n7. ESCASSEZ (lotes limitados, preço sobe)\n8. GARANTIA (se aplicável)\n9. FAQ (3-5 perguntas)\n10. CTA FINAL (urgente, direto)",
	"copy_pagina_hook": "Crie 5 variações de HOOK (headline + sub-headline) para a página de vendas.\nCada hook deve usar uma abordagem diferente: curiosidade, resultado, controvérsia, urgência, especificidade.",
	"copy_pagina_oferta": "Crie a seção de OFERTA da página de vendas com:\n- Apresentação dos lotes com preços\n- O que está incluído em cada ingresso\n- Order bumps disponíveis\n- Destaque do cashback (se houver)\n- Escassez real (vagas limitadas por lote)\n- CTA principal",
	"scripts_abordagem_cashback": "Crie um script comercial de ABORDAGEM para oferecer o cashback das gravações.\nEstrutura: Saudação → Contexto → Benefício do cashback → Cálculo do desconto → Urgência → CTA.\nTom: consultivo, não agressivo.",
	"scripts_follow_up": "Crie 3 scripts de FOLLOW-UP para diferentes cenários:\n1. Lead que demonstrou interesse mas não comprou\n2. Lead que abandonou o checkout\n3. Lead que pediu mais informações\nCada script deve ter 2-3 mensagens na sequência (D+1, D+3, D+5).",
	"scripts_downsell": "Crie um script de DOWNSELL para oferecer após o evento para quem não comprou o high ticket.\nEstrutura: Reconhecimento → Alternativa acessível → Benefícios → Prazo limitado → CTA.",
	"scripts_boleto": "Crie scripts de RECUPERAÇÃO DE BOLETO:\n1. Lembrete amigável (mesmo dia)\n2. Urgência (D+1 - vaga reservada, lote vai virar)\n3. Última chance (D+2)",
}
