package dashboard

import (
	"context"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateDashboard(ctx context.Context, name, description string) (*Dashboard, error)
	GetDashboard(ctx context.Context, id uuid.UUID) (*Dashboard, error)
	ListDashboards(ctx context.Context) ([]Dashboard, error)
	GetDefaultDashboard(ctx context.Context) (*Dashboard, error)
	AddWidgetToDashboard(ctx context.Context, dashboardID uuid.UUID, widgetID int) error

	CreateWidget(ctx context.Context, widgetType WidgetType, title string, seedFromData bool) (Widget, error)
	ListWidgets(ctx context.Context) ([]Widget, error)
	WidgetsFor(ctx context.Context, dashboardID uuid.UUID) ([]Widget, error)
	RenderDashboard(ctx context.Context, dashboardID uuid.UUID) ([]RenderedView, error)
	LayoutFor(ctx context.Context, dashboardID uuid.UUID, metricCap int) (*Layout, error)

	RefreshCatalog(ctx context.Context) error
}

// LeaderboardSource supplies scored entries for leaderboard widgets.
type LeaderboardSource interface {
	TopContributors(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type service struct {
	catalog      *Catalog
	registry     *Registry
	activityRepo activity.Repository
	leaderboard  LeaderboardSource
	logger       *zap.Logger
}

func NewService(catalog *Catalog, registry *Registry, activityRepo activity.Repository, leaderboard LeaderboardSource, logger *zap.Logger) Service {
	return &service{
		catalog:      catalog,
		registry:     registry,
		activityRepo: activityRepo,
		leaderboard:  leaderboard,
		logger:       logger,
	}
}

func (s *service) CreateDashboard(ctx context.Context, name, description string) (*Dashboard, error) {
	d := s.registry.CreateDashboard(name, description)
	s.logger.Info("dashboard created",
		zap.String("dashboard_id", d.ID.String()),
		zap.String("name", name))
	return d, nil
}

func (s *service) GetDashboard(ctx context.Context, id uuid.UUID) (*Dashboard, error) {
	return s.registry.Get(id)
}

func (s *service) ListDashboards(ctx context.Context) ([]Dashboard, error) {
	return s.registry.List(), nil
}

func (s *service) GetDefaultDashboard(ctx context.Context) (*Dashboard, error) {
	d := s.registry.GetDefault()
	if d == nil {
		return nil, ErrDashboardNotFound
	}
	return d, nil
}

func (s *service) AddWidgetToDashboard(ctx context.Context, dashboardID uuid.UUID, widgetID int) error {
	if _, ok := s.catalog.Get(widgetID); !ok {
		return ErrWidgetNotFound
	}
	return s.registry.AddWidgetRef(dashboardID, widgetID)
}

func (s *service) CreateWidget(ctx context.Context, widgetType WidgetType, title string, seedFromData bool) (Widget, error) {
	var seed *Widget
	if seedFromData {
		built, err := s.buildSeed(ctx, widgetType, title)
		if err != nil {
			return Widget{}, err
		}
		seed = built
	}
	return s.catalog.Add(widgetType, title, seed)
}

// buildSeed runs the aggregator so a new widget starts with live data
// instead of an empty payload.
func (s *service) buildSeed(ctx context.Context, widgetType WidgetType, title string) (*Widget, error) {
	activities, _, err := s.activityRepo.FindAll(ctx, activity.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	w := Widget{Type: widgetType, Title: title}
	switch widgetType {
	case WidgetMetric:
		var total float64
		for _, v := range activity.HoursByType(activities) {
			total += v
		}
		w.Metric = &MetricPayload{Value: total, Suffix: "h"}
	case WidgetChart:
		monthly := activity.MonthlySeries(activities, 6)
		data := make([]ChartPoint, 0, len(monthly))
		for _, bucket := range monthly {
			data = append(data, ChartPoint{Name: bucket.Month, Value: float64(bucket.Count)})
		}
		w.Chart = &ChartPayload{ChartType: ChartLine, Data: data}
	case WidgetActivity:
		items := make([]FeedItem, 0, 5)
		for i, a := range activities {
			if i == 5 {
				break
			}
			items = append(items, FeedItem{ID: a.ID.String(), User: a.UserID.String(), Action: a.Title})
		}
		w.Activity = &ActivityFeedPayload{Items: items}
	case WidgetLeaderboard:
		entries := []LeaderboardEntry{}
		if s.leaderboard != nil {
			if top, err := s.leaderboard.TopContributors(ctx, 10); err == nil {
				entries = top
			}
		}
		w.Leaderboard = &LeaderboardPayload{Entries: entries}
	default:
		return nil, ErrInvalidWidgetType
	}
	return &w, nil
}

func (s *service) ListWidgets(ctx context.Context) ([]Widget, error) {
	return s.catalog.List(), nil
}

// WidgetsFor resolves a dashboard's widget ids against the catalog in
// display order. Ids that no longer resolve are filtered out rather
// than failing the whole view.
func (s *service) WidgetsFor(ctx context.Context, dashboardID uuid.UUID) ([]Widget, error) {
	d, err := s.registry.Get(dashboardID)
	if err != nil {
		return nil, err
	}

	widgets := make([]Widget, 0, len(d.WidgetIDs))
	for _, id := range d.WidgetIDs {
		w, ok := s.catalog.Get(id)
		if !ok {
			s.logger.Warn("dashboard references unknown widget",
				zap.String("dashboard_id", dashboardID.String()),
				zap.Int("widget_id", id))
			continue
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func (s *service) RenderDashboard(ctx context.Context, dashboardID uuid.UUID) ([]RenderedView, error) {
	widgets, err := s.WidgetsFor(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	views := make([]RenderedView, 0, len(widgets))
	for _, w := range widgets {
		views = append(views, Render(w))
	}
	return views, nil
}

func (s *service) LayoutFor(ctx context.Context, dashboardID uuid.UUID, metricCap int) (*Layout, error) {
	widgets, err := s.WidgetsFor(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	return BuildLayout(widgets, metricCap), nil
}

// RefreshCatalog rebuilds the built-in widgets from the current
// activity store. Existing widget ids are preserved.
func (s *service) RefreshCatalog(ctx context.Context) error {
	activities, _, err := s.activityRepo.FindAll(ctx, activity.ActivityFilter{})
	if err != nil {
		return err
	}
	entries := []LeaderboardEntry{}
	if s.leaderboard != nil {
		if top, err := s.leaderboard.TopContributors(ctx, 10); err == nil {
			entries = top
		}
	}
	s.catalog.BuildDefaults(activities, entries)
	return nil
}
