package runs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pingponglab/traintracker/internal/store"
)

// A run's tables follow a fixed naming convention keyed by a
// timestamp-derived id, e.g. run_20251003_232605_training_log.
const (
	tablePrefix  = "run_"
	logSuffix    = "_training_log"
	bestSuffix   = "_best_episode_results"
	configSuffix = "_config_kv"
)

// Tables names the database tables backing one run. BestEpisode is empty
// when the run has no best-episode table.
type Tables struct {
	ID          string
	TrainingLog string
	BestEpisode string
}

// ConfigTable returns the name of the run's config key-value table. The
// table may or may not exist; callers probe the catalog before querying.
func (t Tables) ConfigTable() string {
	return tablePrefix + t.ID + configSuffix
}

// Discover maps the catalog's run tables to per-run bundles, latest run id
// first. The training log anchors a run: best-episode or config tables with
// no matching training log are ignored. An empty catalog yields an empty
// slice, not an error.
func Discover(ctx context.Context, cat store.Catalog) ([]Tables, error) {
	names, err := cat.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("runs: discover: %w", err)
	}

	out := make([]Tables, 0, len(names))
	for _, name := range names {
		id, ok := runIDFromLogTable(name)
		if !ok {
			continue
		}
		t := Tables{ID: id, TrainingLog: name}
		best := tablePrefix + id + bestSuffix
		exists, err := cat.TableExists(ctx, best)
		if err != nil {
			return nil, fmt.Errorf("runs: discover: %w", err)
		}
		if exists {
			t.BestEpisode = best
		}
		out = append(out, t)
	}

	// Ids are zero-padded timestamps, so a descending string sort is a
	// descending chronological sort.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func runIDFromLogTable(name string) (string, bool) {
	if len(name) <= len(tablePrefix)+len(logSuffix) {
		return "", false
	}
	if !strings.HasPrefix(name, tablePrefix) || !strings.HasSuffix(name, logSuffix) {
		return "", false
	}
	return name[len(tablePrefix) : len(name)-len(logSuffix)], true
}
