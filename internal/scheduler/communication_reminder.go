package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/config"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
)

// CommunicationReminderConfig representa a configuração do lembrete diário do cronograma
type CommunicationReminderConfig struct {
	CronSchedule string
	Enabled      bool
}

// CommunicationReminderService agenda o lembrete diário das ações de comunicação
// pendentes dos lançamentos ativos
type CommunicationReminderService struct {
	scheduler            *gocron.Scheduler
	config               CommunicationReminderConfig
	appConfig            *config.Config
	launchRepo           repository.LaunchRepository
	communicationRepo    repository.CommunicationRepository
	communicationService communicating.CommunicationService
	runRunning           bool
	runMutex             sync.Mutex
	lastRunStartedAt     time.Time
	lastRunCompletedAt   time.Time
}

// NewCommunicationReminderService cria uma nova instância do serviço de lembretes
func NewCommunicationReminderService(
	launchRepo repository.LaunchRepository,
	communicationRepo repository.CommunicationRepository,
	communicationService communicating.CommunicationService,
	appConfig *config.Config,
) *CommunicationReminderService {
	// Criar a configuração com base na config global
	reminderConfig := CommunicationReminderConfig{
		CronSchedule: appConfig.CommunicationReminder.CronSchedule,
		Enabled:      appConfig.CommunicationReminder.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reminderConfig.CronSchedule,
		"enabled":       reminderConfig.Enabled,
	}).Info("Configuração do lembrete do cronograma carregada")

	return &CommunicationReminderService{
		scheduler:            scheduler,
		config:               reminderConfig,
		appConfig:            appConfig,
		launchRepo:           launchRepo,
		communicationRepo:    communicationRepo,
		communicationService: communicationService,
		runRunning:           false,
	}
}

// Start inicia o agendador
func (s *CommunicationReminderService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Lembrete do cronograma desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do lembrete do cronograma")

	// Agendar o lembrete diário
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.remindAllLaunches()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembrete do cronograma: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do lembrete do cronograma")
		s.scheduler.Stop()
	}()

	return nil
}

// remindAllLaunches percorre os lançamentos ativos e registra as ações
// pendentes do dia corrente de cada cronograma
func (s *CommunicationReminderService) remindAllLaunches() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Lembrete do cronograma já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando lembrete do cronograma para todos os lançamentos ativos")

	launches, err := s.launchRepo.ListLaunches([]domain.LaunchStatus{domain.LaunchStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamentos ativos para o lembrete do cronograma")
		return
	}

	if len(launches) == 0 {
		logrus.Info("Nenhum lançamento ativo encontrado para o lembrete do cronograma")
		return
	}

	reminded := 0
	for _, launch := range launches {
		reminded += s.remindLaunch(launch, startTime)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"launches": len(launches),
		"actions":  reminded,
	}).Info("Lembrete do cronograma concluído")

	s.lastRunCompletedAt = time.Now()
}

// remindLaunch registra as ações pendentes do dia para um lançamento e
// devolve quantas foram encontradas
func (s *CommunicationReminderService) remindLaunch(launch *domain.Launch, now time.Time) int {
	day := CalendarDayFor(launch.EventDate, now)
	if day < 1 || day > communicating.CalendarDays {
		return 0
	}

	// Garantir que o cronograma do lançamento está materializado
	if _, err := s.communicationService.InitializeCommunications(launch.ID); err != nil {
		logrus.WithError(err).WithField("launch_id", launch.ID).Warn("Erro ao inicializar cronograma para o lembrete")
		return 0
	}

	communications, err := s.communicationRepo.ListByLaunchID(launch.ID)
	if err != nil {
		logrus.WithError(err).WithField("launch_id", launch.ID).Error("Erro ao buscar comunicações para o lembrete")
		return 0
	}

	reminded := 0
	for _, comm := range communications {
		if comm.Day != day || comm.Status != domain.CommunicationStatusPending {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"launch_id":   launch.ID,
			"launch_name": launch.Name,
			"day":         comm.Day,
			"channel":     comm.Channel,
			"type":        comm.Type,
			"title":       comm.Title,
		}).Info("Ação de comunicação pendente para hoje")
		reminded++
	}

	return reminded
}

// CalendarDayFor calcula o dia do cronograma (1 a 44) de uma data de
// referência. Valores fora da janela indicam que o cronograma ainda não
// começou ou já terminou
func CalendarDayFor(eventDate, reference time.Time) int {
	start := eventDate.AddDate(0, 0, -(communicating.CalendarDays - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	refDay := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	return int(refDay.Sub(startDay).Hours()/24) + 1
}

// TriggerManualRun inicia manualmente o lembrete do cronograma
func (s *CommunicationReminderService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Lembrete do cronograma já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando lembrete manual do cronograma")
	go s.remindAllLaunches()
}

// GetStatus retorna o status atual do agendador
func (s *CommunicationReminderService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
