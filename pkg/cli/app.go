package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/getmockd/fakeapi/internal/storage"
	"github.com/getmockd/fakeapi/pkg/api"
	"github.com/getmockd/fakeapi/pkg/client"
	"github.com/getmockd/fakeapi/pkg/config"
	"github.com/getmockd/fakeapi/pkg/fakebackend"
	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/metrics"
	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/session"
	"github.com/getmockd/fakeapi/pkg/store"
)

// app is the in-process stack shared by the commands of one invocation.
type app struct {
	flags *globalFlags

	cfg       *config.Config
	log       *slog.Logger
	kv        store.Store
	records   *records.Store
	backend   *fakebackend.Backend
	sessions  *session.Store
	users     *api.Users
	inventory *api.Inventory
	registry  *prometheus.Registry
}

func (a *app) open(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.Logging()
	lc.Output = stderr
	a.log = logging.New(lc)

	a.kv, err = storage.Open(ctx, cfg.Storage, a.log)
	if err != nil {
		return err
	}

	a.records, err = records.Open(ctx, a.kv, records.WithLogger(a.log))
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.backend, err = fakebackend.New(a.records,
		fakebackend.WithLatency(cfg.Latency),
		fakebackend.WithToken(cfg.Token),
		fakebackend.WithLogger(a.log),
		fakebackend.WithMetrics(metrics.New(a.registry)),
	)
	if err != nil {
		return err
	}

	a.sessions = session.NewStore()
	c := client.New(cfg.APIURL, a.backend, client.WithSessions(a.sessions), client.WithLogger(a.log))
	a.users = api.NewUsers(c, a.sessions)
	a.inventory = api.NewInventory(c)
	return nil
}

// authenticate installs the session used by guarded commands.
func (a *app) authenticate() {
	token := a.flags.token
	if token == "" {
		token = a.cfg.Token
	}
	a.sessions.Login(session.Session{Token: token})
}

func (a *app) close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}

// printMetrics writes every gathered sample as "name{labels} value".
func (a *app) printMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			lines = append(lines, formatSample(mf, m)...)
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func formatSample(mf *dto.MetricFamily, m *dto.Metric) []string {
	var labels []string
	for _, lp := range m.GetLabel() {
		labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	series := func(suffix string) string {
		name := mf.GetName() + suffix
		if len(labels) > 0 {
			name += "{" + strings.Join(labels, ",") + "}"
		}
		return name
	}

	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return []string{fmt.Sprintf("%s %g", series(""), m.GetCounter().GetValue())}
	case dto.MetricType_GAUGE:
		return []string{fmt.Sprintf("%s %g", series(""), m.GetGauge().GetValue())}
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return []string{
			fmt.Sprintf("%s %d", series("_count"), h.GetSampleCount()),
			fmt.Sprintf("%s %g", series("_sum"), h.GetSampleSum()),
		}
	default:
		return nil
	}
}
