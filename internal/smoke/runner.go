package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/activities/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Runner executes the smoke scenario against a live service.
type Runner struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Runner{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    logger.Named("smoke"),
	}
}

// Run walks the signup lifecycle: list, signup, duplicate signup, list
// again, remove, duplicate remove. Any unexpected response fails the run.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	stats := Stats{StartTime: time.Now()}
	defer func() { stats.Duration = time.Since(stats.StartTime) }()

	catalog, err := r.fetchCatalog(ctx)
	if err != nil {
		return stats, err
	}
	stats.StepsRun++
	stats.Catalog = len(catalog)

	name := r.cfg.Activity
	if name == "" {
		names := make([]string, 0, len(catalog))
		for n := range catalog {
			names = append(names, n)
		}
		sort.Strings(names)
		if len(names) == 0 {
			return stats, fmt.Errorf("catalog is empty")
		}
		name = names[0]
	}
	if _, ok := catalog[name]; !ok {
		return stats, fmt.Errorf("activity %q not in catalog", name)
	}

	email := r.cfg.Email
	if email == "" {
		email = fmt.Sprintf("smoke-%s@mergington.edu", uuid.NewString()[:8])
	}

	r.log.Info(ctx, "running smoke scenario",
		logger.String("activity", name),
		logger.String("email", email),
	)

	signupURL := fmt.Sprintf("%s/activities/%s/signup?email=%s",
		r.cfg.BaseURL, url.PathEscape(name), url.QueryEscape(email))

	// Signup must succeed once, then conflict.
	if err := r.mutate(ctx, http.MethodPost, signupURL, http.StatusOK); err != nil {
		return stats, fmt.Errorf("signup: %w", err)
	}
	stats.StepsRun++
	if err := r.mutate(ctx, http.MethodPost, signupURL, http.StatusBadRequest); err != nil {
		return stats, fmt.Errorf("duplicate signup: %w", err)
	}
	stats.StepsRun++

	if err := r.verifyEnrollment(ctx, name, email, true); err != nil {
		return stats, err
	}
	stats.StepsRun++

	// Removal must succeed once, then be rejected.
	if err := r.mutate(ctx, http.MethodDelete, signupURL, http.StatusOK); err != nil {
		return stats, fmt.Errorf("remove: %w", err)
	}
	stats.StepsRun++
	if err := r.mutate(ctx, http.MethodDelete, signupURL, http.StatusBadRequest); err != nil {
		return stats, fmt.Errorf("duplicate remove: %w", err)
	}
	stats.StepsRun++

	if err := r.verifyEnrollment(ctx, name, email, false); err != nil {
		return stats, err
	}
	stats.StepsRun++

	r.log.Info(ctx, "smoke scenario passed",
		logger.Int("steps", stats.StepsRun),
		logger.Int("catalog", stats.Catalog),
	)
	return stats, nil
}

func (r *Runner) fetchCatalog(ctx context.Context) (map[string]activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var catalog map[string]activity
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

func (r *Runner) mutate(ctx context.Context, method, target string, wantStatus int) error {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("got status %d, want %d (body: %s)", resp.StatusCode, wantStatus, body)
	}

	if r.cfg.Verbose {
		switch wantStatus {
		case http.StatusOK:
			var m messageResponse
			_ = json.Unmarshal(body, &m)
			r.log.Info(ctx, "mutation accepted", logger.String("message", m.Message))
		default:
			var d detailResponse
			_ = json.Unmarshal(body, &d)
			r.log.Info(ctx, "mutation rejected as expected", logger.String("detail", d.Detail))
		}
	}
	return nil
}

func (r *Runner) verifyEnrollment(ctx context.Context, name, email string, want bool) error {
	catalog, err := r.fetchCatalog(ctx)
	if err != nil {
		return err
	}
	count := 0
	for _, e := range catalog[name].Participants {
		if e == email {
			count++
		}
	}
	switch {
	case want && count != 1:
		return fmt.Errorf("email %s should appear once in %q, found %d", email, name, count)
	case !want && count != 0:
		return fmt.Errorf("email %s should be absent from %q, found %d", email, name, count)
	}
	return nil
}
