package application

import (
	"context"
	"fmt"
	"sync"

	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/catalog"
	"vincit.fi/image-transformer/common/logger"
	"vincit.fi/image-transformer/common/util"
)

type Scanner interface {
	Scan(dir string) ([]*apitype.Picture, error)
}

type Transformer interface {
	Transform(ctx context.Context, pictures []*apitype.Picture, config apitype.TransformConfig) *apitype.RunResult
}

type RunJournal interface {
	AddRun(result *apitype.RunResult, config apitype.TransformConfig) error
}

// Controller owns the catalog and the transform configuration. It is the
// only place where the batch state and the error list change.
type Controller struct {
	mux sync.RWMutex

	source   string
	pictures []*apitype.Picture
	config   apitype.TransformConfig
	sortSpec apitype.SortSpec
	errors   []error

	inProcess bool
	processed bool

	scanner     Scanner
	transformer Transformer
	journal     RunJournal
	sender      api.Sender

	api.Controller
}

// NewController creates a controller with the default configuration.
// journal may be nil.
func NewController(sender api.Sender, scanner Scanner, transformer Transformer, journal RunJournal) *Controller {
	return &Controller{
		config:      apitype.NewTransformConfig(),
		sortSpec:    apitype.NewSortSpec(),
		scanner:     scanner,
		transformer: transformer,
		journal:     journal,
		sender:      sender,
	}
}

// SetSourcePath replaces the catalog with the pictures of path. The source
// path only changes when the scan succeeds, so the path and the catalog
// always belong together.
func (s *Controller) SetSourcePath(path string) error {
	if !util.IsDirectory(path) {
		return fmt.Errorf("%w: '%s'", apitype.ErrInvalidSource, path)
	}

	pictures, err := s.scan(path)
	if err != nil {
		return err
	}

	s.mux.Lock()
	s.source = path
	s.replaceCatalog(pictures)
	s.mux.Unlock()

	s.catalogUpdated(path, len(pictures))
	return nil
}

func (s *Controller) SourcePath() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.source
}

func (s *Controller) SetDestinationPath(path string) error {
	if !util.IsDirectory(path) {
		return fmt.Errorf("%w: '%s'", apitype.ErrInvalidDestination, path)
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	s.config.Destination = path
	return nil
}

func (s *Controller) DestinationPath() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.config.Destination
}

// Rescan reads the source directory again. The catalog is replaced, not
// merged, so selections and processed flags start over. When the directory
// can no longer be read the catalog is emptied.
func (s *Controller) Rescan() error {
	source := s.SourcePath()
	if source == "" {
		return apitype.ErrInvalidSource
	}

	pictures, err := s.scan(source)

	s.mux.Lock()
	if s.source != source {
		s.mux.Unlock()
		logger.Debug.Printf("Source changed from '%s' during rescan", source)
		return nil
	}
	s.replaceCatalog(pictures)
	s.mux.Unlock()

	if err != nil {
		return err
	}
	s.catalogUpdated(source, len(pictures))
	return nil
}

func (s *Controller) scan(source string) ([]*apitype.Picture, error) {
	pictures, err := s.scanner.Scan(source)
	if err != nil {
		s.addError(err)
		s.sender.SendError("Could not read source directory", err)
		return nil, err
	}
	return pictures, nil
}

// replaceCatalog must be called with the lock held.
func (s *Controller) replaceCatalog(pictures []*apitype.Picture) {
	catalog.Sort(pictures, s.sortSpec)
	s.pictures = pictures
	s.processed = false
}

func (s *Controller) catalogUpdated(source string, count int) {
	logger.Info.Printf("Catalog of '%s' has %d pictures", source, count)
	s.sender.SendCommandToTopic(api.CatalogUpdated, &api.CatalogUpdatedCommand{
		Source:   source,
		Pictures: count,
	})
}

// Pictures returns the catalog in display order. The slice is a copy, the
// pictures are shared.
func (s *Controller) Pictures() []*apitype.Picture {
	s.mux.RLock()
	defer s.mux.RUnlock()
	pictures := make([]*apitype.Picture, len(s.pictures))
	copy(pictures, s.pictures)
	return pictures
}

func (s *Controller) findPicture(path string) *apitype.Picture {
	for _, picture := range s.pictures {
		if picture.Path() == path {
			return picture
		}
	}
	return nil
}

// ToggleSelection returns the new selection of the picture or false when
// path is not in the catalog.
func (s *Controller) ToggleSelection(path string) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if picture := s.findPicture(path); picture != nil {
		return picture.ToggleSelected()
	} else {
		logger.Warn.Printf("Picture '%s' is not in the catalog", path)
		return false
	}
}

func (s *Controller) setAllSelected(selected bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, picture := range s.pictures {
		picture.SetSelected(selected)
	}
}

func (s *Controller) SelectAll() {
	s.setAllSelected(true)
}

func (s *Controller) UnselectAll() {
	s.setAllSelected(false)
}

// IsAllSelected is true for an empty catalog.
func (s *Controller) IsAllSelected() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, picture := range s.pictures {
		if !picture.IsSelected() {
			return false
		}
	}
	return true
}

// ToggleAll unselects everything when everything is selected and selects
// everything otherwise.
func (s *Controller) ToggleAll() {
	if s.IsAllSelected() {
		s.UnselectAll()
	} else {
		s.SelectAll()
	}
}

// SelectOnly selects the pictures whose file name is in names and
// unselects the rest. Returns the number of selected pictures.
func (s *Controller) SelectOnly(names []string) int {
	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}

	s.mux.RLock()
	defer s.mux.RUnlock()
	selected := 0
	for _, picture := range s.pictures {
		picture.SetSelected(wanted[picture.Name()])
		if picture.IsSelected() {
			selected++
		}
	}
	return selected
}

func (s *Controller) updateConfig(update func(config *apitype.TransformConfig)) {
	s.mux.Lock()
	defer s.mux.Unlock()
	update(&s.config)
}

func (s *Controller) SetFormat(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Format.Format = apitype.ParseFormat(value)
	})
}

// SetQuality keeps values above 100 as they are.
func (s *Controller) SetQuality(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Format.Quality = apitype.ParseQuality(value)
	})
}

func (s *Controller) SetSpeed(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Format.Speed = apitype.ParseSpeed(value)
	})
}

func (s *Controller) SetAngle(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Rotate.Angle = apitype.ParseAngle(value)
	})
}

func (s *Controller) SetResizeType(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Resize.Type = apitype.ParseResizeType(value)
	})
}

func (s *Controller) SetResizeMethod(value string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Resize.Method = apitype.ParseResizeMethod(value)
	})
}

func (s *Controller) SetResizeDimensions(width string, height string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.Resize.Width = apitype.ParseDimension(width)
		config.Resize.Height = apitype.ParseDimension(height)
	})
}

func (s *Controller) SetFileNameAffixes(prefix string, suffix string) {
	s.updateConfig(func(config *apitype.TransformConfig) {
		config.NamePrefix = prefix
		config.NameSuffix = suffix
	})
}

// ApplyPreset replaces the whole configuration except the destination and
// re-sorts the catalog.
func (s *Controller) ApplyPreset(config apitype.TransformConfig, sortSpec apitype.SortSpec) {
	s.mux.Lock()
	defer s.mux.Unlock()
	config.Destination = s.config.Destination
	s.config = config
	s.sortSpec = sortSpec
	catalog.Sort(s.pictures, s.sortSpec)
}

// Config returns a copy of the current configuration.
func (s *Controller) Config() apitype.TransformConfig {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.config
}

func (s *Controller) SetSortField(value string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sortSpec.Field = apitype.ParseSortField(value)
	catalog.Sort(s.pictures, s.sortSpec)
}

func (s *Controller) ToggleSortOrder() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sortSpec.Order = s.sortSpec.Order.Toggle()
	catalog.Sort(s.pictures, s.sortSpec)
}

func (s *Controller) SortSpec() apitype.SortSpec {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.sortSpec
}

// CanTransform is true when both paths are existing directories and no
// run is in progress.
func (s *Controller) CanTransform() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.validate() == nil
}

func (s *Controller) validate() error {
	if s.inProcess {
		return apitype.ErrRunInProgress
	} else if !util.IsDirectory(s.source) {
		return fmt.Errorf("%w: '%s'", apitype.ErrInvalidSource, s.source)
	} else if !util.IsDirectory(s.config.Destination) {
		return fmt.Errorf("%w: '%s'", apitype.ErrInvalidDestination, s.config.Destination)
	} else {
		return nil
	}
}

// Transform runs the selected pictures through the pipeline with a copy of
// the current configuration and blocks until the run is done. Per picture
// failures are in the result and in Errors, only a run that could not start
// returns an error.
func (s *Controller) Transform(ctx context.Context) (*apitype.RunResult, error) {
	s.mux.Lock()
	if err := s.validate(); err != nil {
		s.mux.Unlock()
		logger.Warn.Printf("Cannot transform: %s", err)
		return nil, err
	}
	s.inProcess = true
	s.processed = false
	config := s.config
	pictures := make([]*apitype.Picture, len(s.pictures))
	copy(pictures, s.pictures)
	s.mux.Unlock()

	result := s.transformer.Transform(ctx, pictures, config)

	s.mux.Lock()
	for _, err := range result.Errors() {
		s.errors = append(s.errors, err)
	}
	s.inProcess = false
	s.processed = true
	s.mux.Unlock()

	if s.journal != nil {
		if err := s.journal.AddRun(result, config); err != nil {
			s.addError(err)
			s.sender.SendError("Could not write run journal", err)
		}
	}

	s.sender.SendCommandToTopic(api.TransformFinished, &api.TransformFinishedCommand{Result: result})
	return result, nil
}

func (s *Controller) IsInProcess() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.inProcess
}

// IsProcessed is true once a run has finished on the current catalog.
func (s *Controller) IsProcessed() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.processed
}

func (s *Controller) addError(err error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.errors = append(s.errors, err)
}

func (s *Controller) Errors() []error {
	s.mux.RLock()
	defer s.mux.RUnlock()
	errs := make([]error, len(s.errors))
	copy(errs, s.errors)
	return errs
}

func (s *Controller) ClearErrors() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.errors = nil
}
