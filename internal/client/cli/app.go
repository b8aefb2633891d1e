package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agoramujeres/agora-client/internal/client/api"
	"github.com/agoramujeres/agora-client/internal/client/chat"
	"github.com/agoramujeres/agora-client/internal/client/config"
	"github.com/agoramujeres/agora-client/internal/client/entitlement"
	"github.com/agoramujeres/agora-client/internal/client/identity"
	"github.com/agoramujeres/agora-client/internal/client/localdb"
	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/repositories/metadata"
	"github.com/agoramujeres/agora-client/internal/client/services"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/filex"
	"github.com/agoramujeres/agora-client/internal/logging"
)

// App owns every wired component of the interactive client.
type App struct {
	config   *config.Config
	log      logging.Logger
	sess     *session.Container
	gateway  *api.Client
	poller   *entitlement.Poller
	resolver *chat.Resolver

	prefs        services.PreferenceService
	diary        services.DiaryService
	cycle        services.CycleService
	record       services.RecordService
	subscription services.SubscriptionService

	reader *bufio.Reader
	close  func() error
}

// NewApp wires the full client: local database, device identity chain,
// session, REST gateway, entitlement poller, chat resolver and the
// application services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault(c.Debug)

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("preparing data dir: %w", err)
	}

	db, err := localdb.Open(ctx, filepath.Join(dataDir, "agora.db"))
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	metadataRepo := metadata.NewSQLiteRepository(db)

	idStore := identity.NewStore(log,
		identity.NewFileBackend(dataDir),
		identity.NewMetadataBackend(metadataRepo),
	)
	deviceID := idStore.GetOrCreateDeviceID(ctx)

	sess := session.New(deviceID, "")
	prefs := services.NewPreferenceService(metadataRepo, sess)
	sess.SetLanguage(prefs.Load(ctx, c.DefaultLanguage))

	gateway := api.New(c.BaseURL, log)
	poller := entitlement.NewPoller(gateway, sess, log)
	resolver := chat.NewResolver(gateway, sess, log)

	return &App{
		config:       c,
		log:          log,
		sess:         sess,
		gateway:      gateway,
		poller:       poller,
		resolver:     resolver,
		prefs:        prefs,
		diary:        services.NewDiaryService(gateway, sess, log, c.Latitude, c.Longitude),
		cycle:        services.NewCycleService(gateway, sess),
		record:       services.NewRecordService(gateway, sess),
		subscription: services.NewSubscriptionService(gateway, poller, sess, log),
		reader:       bufio.NewReader(os.Stdin),
		close:        db.Close,
	}, nil
}

// Run refreshes the entitlement once, starts the background pollers and
// enters the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.close(); err != nil {
			a.log.Warn(ctx, "closing local database", "error", err)
		}
	}()

	if err := a.gateway.Health(ctx); err != nil {
		a.log.Warn(ctx, "backend unreachable, starting anyway", "error", err)
	}
	if err := a.poller.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial entitlement refresh failed", "error", err)
	}
	if err := a.resolver.LoadHistory(ctx); err != nil {
		a.log.Warn(ctx, "loading chat history failed", "error", err)
	}

	bg, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.poller.Watch(bg, a.config.EntitlementRefreshInterval)
	go a.poller.StartCountdown(bg)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: language plus the entitlement badge.
func (a *App) status() string {
	s := a.sess.Language()
	if snap, ok := a.sess.Entitlement(); ok {
		s = fmt.Sprintf("%s %s", s, snap.State)
		if snap.State == models.EntitlementTrial {
			s = fmt.Sprintf("%s %s", s, a.poller.Badge())
		}
	}
	return fmt.Sprintf("(%s)", s)
}
