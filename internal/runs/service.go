package runs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pingponglab/traintracker/internal/store"
)

// ErrRunNotFound reports a run id absent from discovery.
var ErrRunNotFound = errors.New("run not found")

const configModelKey = "model"

// Metrics is the chart payload for one run. Array fields are never nil so
// the empty state serializes as [] rather than null.
type Metrics struct {
	Steps   []*int64     `json:"steps"`
	Returns []*float64   `json:"returns"`
	Elapsed []*float64   `json:"elapsed"`
	Last    *float64     `json:"last"`
	Best    *BestEpisode `json:"best"`
}

// BestEpisode is the most recent best-episode snapshot of a run.
type BestEpisode struct {
	Episode *int64   `json:"episode"`
	Steps   *int64   `json:"steps"`
	Reward  *float64 `json:"reward"`
}

// Summary is one row of the all-runs listing.
type Summary struct {
	Run           string   `json:"run"`
	Model         *string  `json:"model"`
	LastAvgReturn *float64 `json:"last_avg_return"`
	BestReward    *float64 `json:"best_reward"`
	ElapsedMin    *float64 `json:"elapsed_min"`
}

// Service assembles run metrics and summaries from the store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Latest returns the metrics of the most recent run, or the empty payload
// when no runs exist.
func (s *Service) Latest(ctx context.Context) (*Metrics, error) {
	tables, err := Discover(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return emptyMetrics(), nil
	}
	return s.metricsFor(ctx, tables[0])
}

// Metrics returns the metrics of one run, or ErrRunNotFound.
func (s *Service) Metrics(ctx context.Context, runID string) (*Metrics, error) {
	tables, err := Discover(ctx, s.store)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if t.ID == runID {
			return s.metricsFor(ctx, t)
		}
	}
	return nil, ErrRunNotFound
}

// Summaries returns one summary per discovered run, latest first.
func (s *Service) Summaries(ctx context.Context) ([]Summary, error) {
	tables, err := Discover(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(tables))
	for _, t := range tables {
		sum := Summary{Run: t.ID}

		rows, err := s.store.TrainingLog(ctx, t.TrainingLog)
		if err != nil {
			return nil, fmt.Errorf("runs: summary %s: %w", t.ID, err)
		}
		if len(rows) > 0 {
			// Raw storage order here, unlike the chart payload: the
			// training process appends, so the last row is the newest.
			last := rows[len(rows)-1]
			sum.LastAvgReturn = coerceFloat(last.AvgReturn)
			sum.ElapsedMin = coerceFloat(last.Elapsed)
		}

		if t.BestEpisode != "" {
			best, err := s.store.BestEpisodes(ctx, t.BestEpisode)
			if err != nil {
				return nil, fmt.Errorf("runs: summary %s: %w", t.ID, err)
			}
			if len(best) > 0 {
				sum.BestReward = coerceFloat(best[len(best)-1].Reward)
			}
		}

		cfgTable := t.ConfigTable()
		exists, err := s.store.TableExists(ctx, cfgTable)
		if err != nil {
			return nil, fmt.Errorf("runs: summary %s: %w", t.ID, err)
		}
		if exists {
			v, err := s.store.ConfigValue(ctx, cfgTable, configModelKey)
			if err != nil {
				return nil, fmt.Errorf("runs: summary %s: %w", t.ID, err)
			}
			if v.Valid {
				model := v.String
				sum.Model = &model
			}
		}

		out = append(out, sum)
	}
	return out, nil
}

func (s *Service) metricsFor(ctx context.Context, t Tables) (*Metrics, error) {
	m := emptyMetrics()

	rows, err := s.store.TrainingLog(ctx, t.TrainingLog)
	if err != nil {
		return nil, fmt.Errorf("runs: metrics %s: %w", t.ID, err)
	}

	type point struct {
		steps   *int64
		ret     *float64
		elapsed *float64
	}
	points := make([]point, 0, len(rows))
	for _, r := range rows {
		points = append(points, point{
			steps:   coerceInt(r.Steps),
			ret:     coerceFloat(r.AvgReturn),
			elapsed: coerceFloat(r.Elapsed),
		})
	}

	// Insertion order is not reliable for the chart; sort by steps, keeping
	// rows with uncoercible steps stable at the end.
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i].steps, points[j].steps
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	for _, p := range points {
		m.Steps = append(m.Steps, p.steps)
		m.Returns = append(m.Returns, p.ret)
		m.Elapsed = append(m.Elapsed, p.elapsed)
	}
	if n := len(points); n > 0 {
		m.Last = points[n-1].ret
	}

	if t.BestEpisode != "" {
		best, err := s.store.BestEpisodes(ctx, t.BestEpisode)
		if err != nil {
			return nil, fmt.Errorf("runs: metrics %s: %w", t.ID, err)
		}
		if n := len(best); n > 0 {
			// Insertion order is authoritative for "best", not max reward.
			r := best[n-1]
			m.Best = &BestEpisode{
				Episode: coerceInt(r.Episode),
				Steps:   coerceInt(r.Steps),
				Reward:  coerceFloat(r.Reward),
			}
		}
	}

	return m, nil
}

func emptyMetrics() *Metrics {
	return &Metrics{
		Steps:   []*int64{},
		Returns: []*float64{},
		Elapsed: []*float64{},
	}
}
