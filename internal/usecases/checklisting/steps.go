package checklisting

import "github.com/vfg2006/launch-planner-api/internal/domain"

// Phases são as cinco fases do playbook de lançamento pago
var Phases = []domain.PhaseDefinition{
	{Phase: 0, Name: "Decisao e Analise", Description: "Avalie se o lancamento pago faz sentido, analise o nicho, monte a equipe minima e faca as projecoes financeiras antes de comecar.", Steps: "1-4", Duration: "1-2 semanas"},
	{Phase: 1, Name: "Planejamento", Description: "Defina metas de ingressos, estruture lotes, order bumps, produto principal, projecao de faturamento, Big Idea, trafego e cronograma.", Steps: "5-14", Duration: "2-4 semanas"},
	{Phase: 2, Name: "Preparacao e Venda de Ingressos", Description: "Crie a identidade visual, pagina de vendas, checkout, automacoes, criativos e campanhas de trafego. Abra vendas e gerencie lotes.", Steps: "15-24", Duration: "30-44 dias"},
	{Phase: 3, Name: "Evento", Description: "Execute o evento ao vivo em 2 dias: sequencia de comparecimento, check tecnico, conteudo, pitch e ativacao comercial.", Steps: "25-31", Duration: "2 dias (sabado + domingo)"},
	{Phase: 4, Name: "Pos-Evento e Otimizacao", Description: "Mantenha o carrinho aberto, encerre cashback e gravacoes em datas diferentes, ative downsell, follow-up comercial e consolide metricas.", Steps: "32-38", Duration: "7-14 dias"},
}

// LaunchSteps é o catálogo completo dos 38 passos do playbook, na ordem
// de execução. O campo DependsOn referencia a chave do passo anterior
// quando a ordem é obrigatória
var LaunchSteps = []domain.StepDefinition{
	{
		Key:         "phase0_step1",
		Phase:       0,
		Order:       1,
		Title:       "Avaliar se o Lancamento Pago Faz Sentido para o Seu Projeto",
		Description: "Antes de qualquer planejamento, avalie se o modelo de lancamento pago e adequado ao seu momento, nicho e especialista. O lancamento pago nao e para todos -- mas funciona para muito mais nichos do que as pessoas imaginam.",
		Items: []string{
			"Respondi as 5 perguntas de viabilidade",
			"Tenho clareza sobre o especialista e seu dominio tecnico",
			"Identifiquei pelo menos 1 produto principal para vender apos o evento",
			"Tenho (ou consigo levantar) capital minimo para trafego",
		},
	},
	{
		Key:         "phase0_step2",
		Phase:       0,
		Order:       2,
		Title:       "Analisar o Tamanho do Nicho e Publico Disponivel",
		Description: "Entenda o tamanho do seu mercado, o potencial de ingressos e se o nicho suporta lancamentos repetidos. Micronichos funcionam extraordinariamente bem no lancamento pago.",
		DependsOn:   "phase0_step1",
		Items: []string{
			"Mapeei o tamanho da audiencia do especialista em todas as plataformas",
			"Calculei o potencial de ingressos (1-5% da base)",
			"Pesquisei concorrencia e oportunidades no nicho",
			"Defini se e micronicho (e entendi que isso e uma VANTAGEM)",
		},
	},
	{
		Key:         "phase0_step3",
		Phase:       0,
		Order:       3,
		Title:       "Definir a Equipe Minima Necessaria",
		Description: "Monte o time essencial. Lancamento pago exige menos pessoas que o gratuito, mas as funcoes certas precisam estar cobertas.",
		DependsOn:   "phase0_step2",
		Items: []string{
			"Defini quem sera o estrategista",
			"Defini quem sera o especialista",
			"Defini quem fara o trafego",
			"Mapeei funcoes adicionais necessarias (copy, design, suporte)",
			"Toda a equipe entende o modelo de lancamento pago (nao e CPL)",
		},
	},
	{
		Key:         "phase0_step4",
		Phase:       0,
		Order:       4,
		Title:       "Calcular Investimento Minimo e Projecao Conservadora",
		Description: "Faca as contas ANTES de comecar. Defina quanto pode investir, qual o retorno minimo esperado e qual e o cenario pessimista.",
		DependsOn:   "phase0_step3",
		Items: []string{
			"Defini valor maximo de investimento em trafego",
			"Calculei CPA estimado para o nicho",
			"Projetei cenario pessimista (CAC alto, menos ingressos)",
			"Projetei cenario realista",
			"Projetei cenario otimista",
			"Garanti que o cenario pessimista nao quebra o negocio",
			"Entendi que o ingresso tende a pagar o trafego na captacao",
		},
	},
	{
		Key:         "phase1_step5",
		Phase:       1,
		Order:       1,
		Title:       "Definir Meta de Ingressos",
		Description: "Estabeleca um numero claro de ingressos a serem vendidos. Esse numero define TUDO: investimento, equipe, faturamento.",
		DependsOn:   "phase0_step4",
		Items: []string{
			"Defini meta de ingressos (numero exato)",
			"Calculei pacing diario (vendas/dia necessarias)",
			"Calculei pacing por dia util",
			"Meta esta realista para o tamanho da minha base",
		},
	},
	{
		Key:         "phase1_step6",
		Phase:       1,
		Order:       2,
		Title:       "Montar Estrutura de Lotes",
		Description: "Divida seus ingressos em 7 a 9 lotes com precos crescentes. A virada de lote e a principal ferramenta de escassez e urgencia durante a venda de ingressos.",
		DependsOn:   "phase1_step5",
		Items: []string{
			"Defini 7-9 lotes com precos crescentes",
			"Distribui quantidade de ingressos por lote",
			"Calculei ticket medio ponderado",
			"Preco inicial e atrativo (R$19-39)",
			"Cada virada de lote esta no calendario",
		},
	},
	{
		Key:         "phase1_step7",
		Phase:       1,
		Order:       3,
		Title:       "Definir Order Bumps",
		Description: "Configure de 1 a 3 order bumps no checkout. Os order bumps sao responsaveis por DOBRAR ou TRIPLICAR o faturamento de ingressos. Sao a chave financeira do lancamento pago.",
		DependsOn:   "phase1_step6",
		Items: []string{
			"Order Bump 1 (gravacoes) definido com preco e copy",
			"Testei a nomenclatura: \"gravacoes em formato de aulas\"",
			"Order Bump 2 definido (se aplicavel)",
			"Order Bump 3 definido (se aplicavel)",
			"Estrategia de cashback definida",
			"Cada order bump tem um objetivo estrategico alem do faturamento",
		},
	},
	{
		Key:         "phase1_step8",
		Phase:       1,
		Order:       4,
		Title:       "Definir Produto Principal e Ticket",
		Description: "Defina qual e o produto que sera vendido no pitch do evento. Pode ser curso, mentoria, servico ou programa.",
		DependsOn:   "phase1_step7",
		Items: []string{
			"Produto principal definido (nome, formato, entrega)",
			"Ticket definido com base no ROI para o aluno",
			"Opcao de boleto parcelado configurada (ticket ligeiramente maior)",
			"Cashback das gravacoes calculado como % do produto principal",
			"Pagina de vendas do produto principal pronta ou em producao",
		},
	},
	{
		Key:         "phase1_step9",
		Phase:       1,
		Order:       5,
		Title:       "Criar Projecao Completa de Faturamento",
		Description: "Monte uma planilha linha por linha com TODAS as fontes de receita. Este e o documento mais importante do planejamento -- ele dita todas as decisoes.",
		DependsOn:   "phase1_step8",
		Items: []string{
			"Planilha de projecao completa montada",
			"Cada linha tem: qtd, taxa de conversao, ticket, faturamento",
			"Cenario pessimista calculado",
			"Cenario realista calculado",
			"Cenario otimista calculado",
			"ROAS projetado em cada cenario",
		},
	},
	{
		Key:         "phase1_step10",
		Phase:       1,
		Order:       6,
		Title:       "Definir Big Idea e Narrativa/Tema",
		Description: "Crie um tema ou narrativa que torne o evento unico, memoravel e diferente de \"mais um curso online\". Isso e o que separa lancamentos de 6 digitos dos de 7 digitos.",
		DependsOn:   "phase1_step5",
		Items: []string{
			"Big Idea definida (angulo unico do evento)",
			"Tema/narrativa criada",
			"Promessa usa linguagem de ACAO (\"faca\", \"crie\", \"construa\")",
			"O tema gera curiosidade e desejo",
			"O especialista valida e se empolga com o tema",
		},
	},
	{
		Key:         "phase1_step11",
		Phase:       1,
		Order:       7,
		Title:       "Planejar Distribuicao de Trafego",
		Description: "Distribua seu orcamento de trafego em categorias claras. A maior parte vai para venda de ingressos, mas reservas para conteudo, remarketing e emergencias sao essenciais.",
		DependsOn:   "phase1_step9",
		Items: []string{
			"Orcamento total de trafego definido",
			"Distribuicao por categoria definida (82/10/5/3 ou ajustado)",
			"Expectativa de ingressos por origem (trafego/organico/base)",
			"Margem de reserva separada",
			"Custo de API WhatsApp/Manychat incluido no remarketing",
		},
	},
	{
		Key:         "phase1_step12",
		Phase:       1,
		Order:       8,
		Title:       "Calcular CPA Maximo e Pacing Diario",
		Description: "Defina o preco maximo que pode pagar por ingresso (CPA) e quantas vendas por dia precisa atingir.",
		DependsOn:   "phase1_step11",
		Items: []string{
			"CPA maximo calculado",
			"Pacing diario definido (total e por dia util)",
			"Entendi que o CPA comeca baixo e sobe ao longo da captacao",
			"Reservei verba extra para os ultimos lotes",
		},
	},
	{
		Key:         "phase1_step13",
		Phase:       1,
		Order:       9,
		Title:       "Definir Cronograma do Evento",
		Description: "Defina quando sera o evento e qual sera o formato exato de cada dia. O padrao e sabado + domingo, 9h30 as 17h30.",
		DependsOn:   "phase1_step10",
		Items: []string{
			"Data do evento definida (sabado + domingo)",
			"Horarios definidos (9h30 as 17h30 padrao)",
			"Cronograma hora a hora de cada dia",
			"Intervalos estrategicos planejados (cases, videos)",
			"Momentos de pitch definidos (3 pitches: pre-pitch, pitch principal, fechamento)",
			"Plataforma definida (Zoom ate 1.000 pessoas, YouTube acima)",
		},
	},
	{
		Key:         "phase1_step14",
		Phase:       1,
		Order:       10,
		Title:       "Montar Calendario Completo do Lancamento",
		Description: "Monte um calendario retroativo a partir da data do evento com TODAS as datas e marcos importantes.",
		DependsOn:   "phase1_step13",
		Items: []string{
			"Calendario completo montado com todas as datas",
			"Data de abertura de vendas definida",
			"Datas de virada de cada lote definidas",
			"Data do evento definida",
			"Datas de encerramento de cashback, gravacoes, carrinho definidas",
			"Calendario compartilhado com toda a equipe",
		},
	},
	{
		Key:         "phase2_step15",
		Phase:       2,
		Order:       1,
		Title:       "Criar Identidade Visual do Evento",
		Description: "Crie uma identidade visual propria para o evento que transmita profissionalismo, seja coerente com o tema/narrativa e funcione em todos os pontos de contato.",
		DependsOn:   "phase1_step14",
		Items: []string{
			"Nome do evento definido",
			"Identidade visual criada (logo, cores, tipografia)",
			"Assets produzidos para todos os canais",
			"Templates de criativos prontos",
			"Materiais de countdown/antecipacao prontos",
		},
	},
	{
		Key:         "phase2_step16",
		Phase:       2,
		Order:       2,
		Title:       "Construir Pagina de Vendas do Ingresso",
		Description: "A pagina de vendas e um dos 3 pilares que carregam 80% do resultado (junto com promessa e criativos). Ela deve ser clara, atrativa e converter.",
		DependsOn:   "phase2_step15",
		Items: []string{
			"Headline com promessa de acao (\"crie\", \"construa\", \"faca\")",
			"Video do especialista na pagina",
			"Barra de progresso de lotes funcionando",
			"Preco e lote atual em destaque",
			"Cronograma do evento visivel",
			"Bio do especialista com credibilidade",
			"Depoimentos/cases",
			"FAQ com objecoes principais",
			"Botao CTA em multiplos pontos",
			"Pagina testada em mobile e desktop",
		},
	},
	{
		Key:         "phase2_step17",
		Phase:       2,
		Order:       3,
		Title:       "Configurar Checkout com Order Bumps na Hotmart",
		Description: "Configure o checkout com todos os order bumps, garantindo que a experiencia de compra seja fluida e os produtos estejam corretamente vinculados.",
		DependsOn:   "phase2_step16",
		Items: []string{
			"Produto \"Ingresso\" criado na Hotmart",
			"Order bumps configurados no checkout",
			"Links de checkout de cada lote gerados e testados",
			"Emails de confirmacao configurados",
			"Pagina de obrigado pos-compra configurada",
			"Teste completo do fluxo de compra (do anuncio ao email)",
		},
	},
	{
		Key:         "phase2_step18",
		Phase:       2,
		Order:       4,
		Title:       "Configurar Automacoes",
		Description: "Configure todas as automacoes que vao rodar durante a venda de ingressos e o evento: virada de lotes, barra de progresso, emails, WhatsApp, onboarding.",
		DependsOn:   "phase2_step17",
		Items: []string{
			"Automacao de virada de lotes configurada (ou processo manual definido)",
			"Barra de progresso configurada e testada",
			"Email de boas-vindas pronto",
			"Onboarding WhatsApp configurado",
			"Sequencia de comparecimento agendada",
			"Emails de virada de lote redigidos",
			"Teste de todas as automacoes antes da abertura",
		},
	},
	{
		Key:         "phase2_step19",
		Phase:       2,
		Order:       5,
		Title:       "Produzir Primeira Leva de Criativos",
		Description: "Produza no minimo 5 criativos para o inicio da campanha. A maioria dos ingressos vem de criativos de VIDEO, nao de imagem.",
		DependsOn:   "phase2_step15",
		Items: []string{
			"Minimo 5 criativos produzidos para o lancamento",
			"Pelo menos 2 videos do especialista",
			"Pelo menos 1 UGC/depoimento",
			"Imagens estaticas como complemento",
			"Criativos revisados (copy, edicao, CTA)",
			"Todos os criativos com link correto do lote atual",
		},
	},
	{
		Key:         "phase2_step20",
		Phase:       2,
		Order:       6,
		Title:       "Estruturar Campanhas de Trafego",
		Description: "Configure as campanhas no Facebook/Instagram Ads e Google Ads com a estrutura correta para venda de ingressos.",
		DependsOn:   "phase2_step19",
		Items: []string{
			"Campanha Facebook/Instagram configurada",
			"Campanha Google configurada (se aplicavel)",
			"Criativos subidos e revisados",
			"Pixel/API de conversao instalado e testando",
			"Orcamento diario inicial definido",
			"Plano de escalada de orcamento documentado",
		},
	},
	{
		Key:         "phase2_step21",
		Phase:       2,
		Order:       7,
		Title:       "Abrir Vendas e Monitorar Diariamente",
		Description: "Abra as vendas no Lote 0 ou Lote 1 e comece o monitoramento diario obsessivo de todos os indicadores.",
		DependsOn:   "phase2_step20",
		Items: []string{
			"Dashboard diario configurado",
			"Responsavel pelo monitoramento definido",
			"Processo de ajuste rapido (quem decide, quem executa)",
			"Acompanhando vendas/dia vs pacing",
			"Acompanhando CPA vs teto",
			"Acompanhando conversao de order bumps",
		},
	},
	{
		Key:         "phase2_step22",
		Phase:       2,
		Order:       8,
		Title:       "Gerenciar Viradas de Lote",
		Description: "Cada virada de lote e um evento de marketing. Comunique em TODOS os canais e use como gatilho de urgencia.",
		DependsOn:   "phase2_step21",
		Items: []string{
			"Calendario de virada de lotes definido",
			"Copias de email para cada virada redigidas",
			"Copias de WhatsApp para cada virada redigidas",
			"Posts/stories para cada virada planejados",
			"Criativos de anuncio atualizados a cada virada",
			"Link do checkout atualizado a cada virada",
		},
	},
	{
		Key:         "phase2_step23",
		Phase:       2,
		Order:       9,
		Title:       "Produzir Criativos Continuamente",
		Description: "NAO pare de produzir criativos apos a abertura. Os criativos saturam e o CPA sobe se voce nao renova.",
		DependsOn:   "phase2_step21",
		Items: []string{
			"Ranking de criativos atualizado semanalmente",
			"Novos criativos sendo produzidos continuamente",
			"Testes de formatos diferentes rodando",
			"Criativos saturados sendo desativados",
			"Pelo menos 2 novos criativos por semana apos a abertura",
		},
	},
	{
		Key:         "phase2_step24",
		Phase:       2,
		Order:       10,
		Title:       "Fazer Onboarding Imediato dos Compradores",
		Description: "Assim que alguem comprar o ingresso (e/ou gravacoes), faca o onboarding imediato: boas-vindas, acesso ao grupo, instrucoes do evento.",
		DependsOn:   "phase2_step18",
		Items: []string{
			"Email de boas-vindas automatico configurado",
			"Mensagem de WhatsApp automatica configurada",
			"Grupo do evento criado com descricao estrategica",
			"Presente/incentivo na descricao do grupo",
			"Onboarding especifico para compradores de gravacoes",
			"Canal de comunicacao aberto para abordagem futura (cashback)",
		},
	},
	{
		Key:         "phase3_step25",
		Phase:       3,
		Order:       1,
		Title:       "Ativar Sequencia de Comparecimento",
		Description: "Nos 7 dias que antecedem o evento, ative uma sequencia de lembretes e aquecimento para maximizar o comparecimento.",
		DependsOn:   "phase2_step24",
		Items: []string{
			"Sequencia de comparecimento redigida e agendada",
			"Links de acesso ao evento testados",
			"Lembretes em todos os canais (email, WhatsApp, Instagram)",
			"Mensagem de D-0 -1h pronta",
			"Mensagem de inicio do evento pronta",
		},
	},
	{
		Key:         "phase3_step26",
		Phase:       3,
		Order:       2,
		Title:       "Check Tecnico Final",
		Description: "No dia anterior ao evento, faca um check tecnico completo. Problemas tecnicos durante o evento custam vendas e satisfacao.",
		DependsOn:   "phase3_step25",
		Items: []string{
			"Audio testado e funcionando",
			"Video testado e funcionando",
			"Internet principal + backup configurados",
			"Plataforma (Zoom/YouTube) configurada e testada",
			"Links de compra do produto principal testados",
			"Slides/apresentacao testados",
			"Videos de intervalo carregados",
			"Chat/moderacao configurada",
			"Operador tecnico briefado",
			"Ensaio geral feito (pelo menos 30 min antes)",
		},
	},
	{
		Key:         "phase3_step27",
		Phase:       3,
		Order:       3,
		Title:       "Executar Dia 1 do Evento",
		Description: "Execute o primeiro dia do evento seguindo o cronograma. Foco em CONTEUDO + CONEXAO. O dia 1 planta as sementes (seeding) para o pitch do dia 2.",
		DependsOn:   "phase3_step26",
		Items: []string{
			"Video de abertura pronto e rodou",
			"Blocos de conteudo entregues conforme cronograma",
			"Intervalos com conteudo rodando (cases, depoimentos)",
			"Seeding feito (sementes plantadas para o produto)",
			"Encerramento com antecipacao do dia 2",
			"Feedback da equipe sobre o dia (o que ajustar pro dia 2)",
		},
	},
	{
		Key:         "phase3_step28",
		Phase:       3,
		Order:       4,
		Title:       "Executar Dia 2 do Evento (com Pitch)",
		Description: "O dia 2 e o dia da conversao. Conteudo avancado + projeto final + PITCH PRINCIPAL. Faca 3 momentos de pitch.",
		DependsOn:   "phase3_step27",
		Items: []string{
			"Conteudo do dia 2 entregue conforme cronograma",
			"Pre-pitch realizado (transicao natural)",
			"Pitch principal executado com todos os elementos",
			"Link de compra funcionando e no chat",
			"Intervalo pos-pitch com cases e video de vendas",
			"Pitch de fechamento realizado",
			"Q&A com objecoes respondidas",
		},
	},
	{
		Key:         "phase3_step29",
		Phase:       3,
		Order:       5,
		Title:       "Gerenciar Intervalos Estrategicamente",
		Description: "Os intervalos NAO sao tempo morto. Sao tempo de influencia. Rode conteudo estrategico durante cada pausa.",
		DependsOn:   "phase3_step26",
		Items: []string{
			"Videos de intervalo produzidos e prontos",
			"Pelo menos 3-5 depoimentos em video",
			"VSL do produto principal gravado",
			"Playlist de intervalo montada e testada",
			"Operador sabe trocar entre conteudo e intervalos",
		},
	},
	{
		Key:         "phase3_step30",
		Phase:       3,
		Order:       6,
		Title:       "Ativar Time Comercial Durante e Pos-Pitch",
		Description: "O time comercial deve estar ativo DURANTE o evento, respondendo duvidas e abordando interessados em tempo real.",
		DependsOn:   "phase3_step28",
		Items: []string{
			"Time comercial briefado e pronto antes do evento",
			"Scripts de abordagem redigidos",
			"Canais de atendimento definidos (WhatsApp, DM, chat)",
			"Processo de follow-up definido (quem aborda quem, quando)",
			"Lista de participantes do Zoom/YouTube sera extraida apos o evento",
			"Todo o time sabe que pode/deve ajudar no atendimento",
		},
	},
	{
		Key:         "phase3_step31",
		Phase:       3,
		Order:       7,
		Title:       "Abrir Cashback para Compradores de Gravacoes",
		Description: "Ative a oferta de cashback para quem comprou as gravacoes. O valor pago nas gravacoes vira desconto no produto principal.",
		DependsOn:   "phase3_step28",
		Items: []string{
			"Cashback ativado e comunicado",
			"Link especifico com desconto configurado",
			"Prazo de validade do cashback definido (antes do carrinho geral)",
			"Comunicacao por email, WhatsApp individual e grupo",
			"Follow-up individual com quem comprou gravacoes e nao usou o cashback",
		},
	},
	{
		Key:         "phase4_step32",
		Phase:       4,
		Order:       1,
		Title:       "Manter Carrinho Aberto 3-7 Dias com Urgencia Real",
		Description: "Apos o evento, mantenha o carrinho aberto por 3 a 7 dias com comunicacao ativa, escassez real e remarketing.",
		DependsOn:   "phase3_step31",
		Items: []string{
			"Carrinho aberto por 3-7 dias apos o evento",
			"Cronograma de comunicacao pos-evento definido",
			"Emails diarios redigidos e agendados",
			"Mensagens WhatsApp redigidas e agendadas",
			"Remarketing rodando para base do evento",
			"Time comercial ativo no follow-up",
		},
	},
	{
		Key:         "phase4_step33",
		Phase:       4,
		Order:       2,
		Title:       "Encerrar Cashback",
		Description: "Encerre a oferta de cashback em um dia especifico ANTES do encerramento geral. Isso cria um momento de urgencia exclusivo para os compradores de gravacoes.",
		DependsOn:   "phase4_step32",
		Items: []string{
			"Data de encerramento do cashback definida (antes do carrinho geral)",
			"Comunicacao de D-2, D-1 e D-0 redigida",
			"Follow-up individual com quem tem cashback e nao usou",
			"Apos encerramento: foco muda para escassez geral",
		},
	},
	{
		Key:         "phase4_step34",
		Phase:       4,
		Order:       3,
		Title:       "Encerrar Gravacoes",
		Description: "Encerre a venda de gravacoes em um dia especifico, diferente do cashback e do carrinho geral. Mais um gatilho de urgencia.",
		DependsOn:   "phase4_step33",
		Items: []string{
			"Data de encerramento das gravacoes definida",
			"Comunicacao redigida e agendada",
			"Follow-up com compradores de gravacoes que nao compraram o produto",
			"Acesso as gravacoes efetivamente encerrado na data comunicada",
		},
	},
	{
		Key:         "phase4_step35",
		Phase:       4,
		Order:       4,
		Title:       "Ativar Downsell para Quem Nao Comprou",
		Description: "Para quem nao comprou o produto principal, ofereca um produto de ticket menor (downsell). Funciona melhor para high ticket.",
		DependsOn:   "phase4_step34",
		Items: []string{
			"Avaliacao: downsell faz sentido para o meu ticket? (Sim para high ticket, avaliar para mid)",
			"Produto de downsell definido e precificado",
			"Pagina/checkout do downsell configurados",
			"Comunicacao de downsell redigida",
			"Base segmentada (so quem NAO comprou o produto principal)",
			"Prazo de downsell definido",
		},
	},
	{
		Key:         "phase4_step36",
		Phase:       4,
		Order:       5,
		Title:       "Follow-up Comercial com Interessados via Boleto",
		Description: "Ative o time comercial para follow-up intensivo com quem demonstrou interesse mas nao fechou. Ofereca boleto parcelado como alternativa.",
		DependsOn:   "phase4_step32",
		Items: []string{
			"Lista de interessados nao-compradores levantada",
			"Boleto parcelado configurado na Hotmart",
			"Scripts de abordagem comercial prontos",
			"Calls de fechamento agendados",
			"Follow-up diario ate o encerramento do carrinho",
		},
	},
	{
		Key:         "phase4_step37",
		Phase:       4,
		Order:       6,
		Title:       "Encerrar Carrinho Geral",
		Description: "Encerre o carrinho com comunicacao intensa de escassez REAL. O ultimo dia e o segundo maior dia de vendas (depois do dia do pitch).",
		DependsOn:   "phase4_step35",
		Items: []string{
			"Data de encerramento definida e comunicada desde o inicio",
			"Emails de encerramento redigidos e agendados",
			"Mensagens WhatsApp de encerramento prontas",
			"Remarketing de ultimo dia rodando",
			"Carrinho REALMENTE fechado na data comunicada",
			"Time comercial fazendo ultimas abordagens",
		},
	},
	{
		Key:         "phase4_step38",
		Phase:       4,
		Order:       7,
		Title:       "Consolidar Metricas, Debriefing e Planejar Proximo",
		Description: "Apos o encerramento de tudo, consolide TODAS as metricas, faca debriefing com a equipe e planeje o proximo lancamento.",
		DependsOn:   "phase4_step37",
		Items: []string{
			"Todas as metricas consolidadas em planilha",
			"Planejado vs Realizado comparado para cada indicador",
			"Debriefing realizado com toda a equipe",
			"Top 5 acertos documentados",
			"Top 5 erros documentados",
			"Top 3 alavancas de melhoria identificadas",
			"Proximo lancamento ja com data estimada",
			"Lista de espera para proximo evento ativada (se aplicavel)",
		},
	},
}
