package backend

import (
	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/backend/application"
	"vincit.fi/image-transformer/backend/catalog"
	"vincit.fi/image-transformer/backend/codec"
	"vincit.fi/image-transformer/backend/journal"
	"vincit.fi/image-transformer/backend/transform"
	"vincit.fi/image-transformer/common"
	"vincit.fi/image-transformer/common/event"
	"vincit.fi/image-transformer/common/logger"
)

type Services struct {
	Broker     *event.Broker
	Codec      *codec.Registry
	Pipeline   *transform.Pipeline
	Controller *application.Controller
	Journal    *journal.Journal

	database *journal.Database
}

// Close stops the event topics and closes the journal database if one was
// opened.
func (s *Services) Close() {
	for _, topic := range []api.Topic{api.ProcessStatusUpdated, api.PictureStateUpdated, api.CatalogUpdated, api.TransformFinished, api.ShowError} {
		s.Broker.Close(topic)
	}
	if s.database != nil {
		s.database.Close()
	}
}

func InitializeServices(params *common.Params) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	workers := params.Workers
	if workers < 1 {
		workers = transform.DefaultWorkers()
	}

	broker := event.InitBus(params.EventQueueSize)
	registry := codec.NewRegistry()
	logger.Debug.Printf("Available %s", registry)

	services := &Services{
		Broker: broker,
		Codec:  registry,
	}

	var runJournal application.RunJournal
	if params.JournalPath != "" {
		database, err := journal.NewDatabase(params.JournalPath)
		if err != nil {
			return nil, err
		}
		services.database = database
		services.Journal = journal.NewJournal(database)
		runJournal = services.Journal
	}

	progressReporter := api.NewSenderProgressReporter(broker)
	services.Pipeline = transform.NewPipeline(registry, workers, progressReporter)
	services.Controller = application.NewController(broker, catalog.NewScanner(workers), services.Pipeline, runJournal)
	services.Controller.ApplyPreset(params.Preset.TransformConfig(), params.Preset.SortSpec())

	logger.Debug.Printf("Services initialized with %d workers", workers)
	return services, nil
}
