package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Ensure PostgresStorage implements every store interface.
var (
	_ MatchStore      = (*PostgresStorage)(nil)
	_ PredictionStore = (*PostgresStorage)(nil)
	_ RunStore        = (*PostgresStorage)(nil)
	_ CandidateStore  = (*PostgresStorage)(nil)
	_ AdvisoryStore   = (*PostgresStorage)(nil)
)

// PostgresStorage is the single PostgreSQL backend behind all stores.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage opens the connection, pings it and initializes the
// schema.
func NewPostgresStorage(cfg *config.PostgresConfig) (*PostgresStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL storage initialized successfully")
	return s, nil
}

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS matches (
		id VARCHAR(500) PRIMARY KEY,
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		league VARCHAR(200) NOT NULL,
		match_date DATE NOT NULL,
		match_time VARCHAR(5) NOT NULL DEFAULT '',
		odds JSONB,
		ft_home INT, ft_away INT, ft_known BOOLEAN NOT NULL DEFAULT FALSE,
		ht_home INT, ht_away INT, ht_known BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(match_date);
	CREATE INDEX IF NOT EXISTS idx_matches_league ON matches(league);

	CREATE TABLE IF NOT EXISTS predictions (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL,
		match_id VARCHAR(500) NOT NULL,
		match_key VARCHAR(700) NOT NULL DEFAULT '',
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		league VARCHAR(200) NOT NULL,
		match_date DATE NOT NULL,
		match_time VARCHAR(5) NOT NULL DEFAULT '',
		bet VARCHAR(100) NOT NULL,
		confidence INT NOT NULL,
		rule_id INT NOT NULL,
		alternatives JSONB,
		status VARCHAR(20) NOT NULL,
		result VARCHAR(20) NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_predictions_result ON predictions(result);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_predictions_active_fixture
		ON predictions(match_key) WHERE status = 'active' AND result = 'pending';
	CREATE INDEX IF NOT EXISTS idx_predictions_match_date ON predictions(match_date);
	CREATE INDEX IF NOT EXISTS idx_predictions_rule ON predictions(rule_id);

	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		status VARCHAR(20) NOT NULL,
		started_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP,
		date_from DATE NOT NULL,
		date_to DATE NOT NULL,
		leagues TEXT[],
		min_confidence INT NOT NULL,
		matches_processed INT NOT NULL DEFAULT 0,
		opportunities_found INT NOT NULL DEFAULT 0,
		execution_time_ms BIGINT NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS candidate_rules (
		candidate_id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		prediction_text VARCHAR(100) NOT NULL,
		confidence_base INT NOT NULL,
		conditions JSONB NOT NULL,
		test_status VARCHAR(20) NOT NULL,
		created_by VARCHAR(100) NOT NULL DEFAULT '',
		last_tested_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS sandbox_test_runs (
		test_run_id VARCHAR(100) PRIMARY KEY,
		test_name VARCHAR(200) NOT NULL,
		candidate_id VARCHAR(100) NOT NULL REFERENCES candidate_rules(candidate_id),
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		baseline_mode VARCHAR(20) NOT NULL,
		baseline_rule_id INT NOT NULL DEFAULT 0,
		total_matches INT NOT NULL,
		candidate_predictions INT NOT NULL,
		candidate_wins INT NOT NULL,
		candidate_losses INT NOT NULL,
		candidate_win_rate DOUBLE PRECISION NOT NULL,
		baseline_predictions INT NOT NULL,
		baseline_wins INT NOT NULL,
		baseline_losses INT NOT NULL,
		baseline_win_rate DOUBLE PRECISION NOT NULL,
		win_rate_delta DOUBLE PRECISION NOT NULL,
		p_value DOUBLE PRECISION NOT NULL,
		is_significant BOOLEAN NOT NULL,
		recommendation VARCHAR(30) NOT NULL,
		reason TEXT NOT NULL,
		executed_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_test_runs_candidate ON sandbox_test_runs(candidate_id, executed_at DESC);

	CREATE TABLE IF NOT EXISTS advisories (
		suggestion_id VARCHAR(200) PRIMARY KEY,
		severity VARCHAR(10) NOT NULL,
		category VARCHAR(50) NOT NULL,
		title VARCHAR(300) NOT NULL,
		description TEXT NOT NULL,
		data JSONB,
		recommendation TEXT NOT NULL DEFAULT '',
		justification TEXT NOT NULL DEFAULT '',
		actions JSONB,
		action_required BOOLEAN NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Close closes the underlying connection pool.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

// --- MatchStore ---

const matchColumns = `id, home_team, away_team, league, match_date, match_time, odds,
	ft_home, ft_away, ft_known, ht_home, ht_away, ht_known`

func (s *PostgresStorage) FetchMatches(ctx context.Context, from, to time.Time, leagues []string) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE match_date BETWEEN $1 AND $2`
	args := []interface{}{from, to}
	if len(leagues) > 0 {
		query += ` AND league = ANY($3)`
		args = append(args, pq.Array(leagues))
	}
	query += ` ORDER BY match_date, match_time, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func (s *PostgresStorage) FetchFinishedMatches(ctx context.Context, from, to time.Time) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
		WHERE match_date BETWEEN $1 AND $2 AND ft_known = TRUE
		ORDER BY match_date, match_time, id`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch finished matches: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func scanMatches(rows *sql.Rows) ([]models.Match, error) {
	var matches []models.Match
	for rows.Next() {
		var m models.Match
		var oddsRaw []byte
		var ftHome, ftAway, htHome, htAway sql.NullInt64
		if err := rows.Scan(&m.ID, &m.HomeTeam, &m.AwayTeam, &m.League, &m.MatchDate, &m.MatchTime,
			&oddsRaw, &ftHome, &ftAway, &m.FullTime.Known, &htHome, &htAway, &m.HalfTime.Known); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if len(oddsRaw) > 0 {
			if err := json.Unmarshal(oddsRaw, &m.Odds); err != nil {
				return nil, fmt.Errorf("failed to decode odds for match %s: %w", m.ID, err)
			}
		}
		m.FullTime.Home, m.FullTime.Away = int(ftHome.Int64), int(ftAway.Int64)
		m.HalfTime.Home, m.HalfTime.Away = int(htHome.Int64), int(htAway.Int64)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *PostgresStorage) AttachScores(ctx context.Context, matchID string, fullTime, halfTime models.Score) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE matches SET
			ft_home = $2, ft_away = $3, ft_known = $4,
			ht_home = $5, ht_away = $6, ht_known = $7,
			updated_at = NOW()
		WHERE id = $1`,
		matchID, fullTime.Home, fullTime.Away, fullTime.Known,
		halfTime.Home, halfTime.Away, halfTime.Known)
	if err != nil {
		return fmt.Errorf("failed to attach scores to match %s: %w", matchID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- PredictionStore ---

func (s *PostgresStorage) ReplacePredictions(ctx context.Context, runID string, from, to time.Time, opportunities []models.Opportunity) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Only ungraded active predictions are retired; graded history stays.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM predictions
		WHERE status = $1 AND result = $2 AND match_date BETWEEN $3 AND $4`,
		enums.StatusActive, enums.StatusPending, from, to); err != nil {
		return 0, fmt.Errorf("failed to retire stale predictions: %w", err)
	}

	// The unique index on match_key for active pending rows makes the
	// replacement idempotent at the fixture level: a run that slipped
	// past the lock cannot double-insert the same fixture.
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO predictions (id, run_id, match_id, match_key, home_team, away_team, league,
			match_date, match_time, bet, confidence, rule_id, alternatives, status, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, opp := range opportunities {
		alternatives, err := json.Marshal(opp.Alternatives)
		if err != nil {
			return 0, fmt.Errorf("failed to encode alternatives for match %s: %w", opp.MatchID, err)
		}
		matchKey := models.NaturalMatchKey(opp.League, opp.HomeTeam, opp.AwayTeam, opp.MatchDate)
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), runID, opp.MatchID, matchKey, opp.HomeTeam, opp.AwayTeam, opp.League,
			opp.MatchDate, opp.MatchTime, opp.Prediction.Bet, opp.Prediction.Confidence,
			opp.Prediction.RuleID, alternatives, enums.StatusActive, enums.StatusPending); err != nil {
			return 0, fmt.Errorf("failed to insert prediction for match %s: %w", opp.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit predictions: %w", err)
	}
	return len(opportunities), nil
}

func (s *PostgresStorage) FetchPendingPredictions(ctx context.Context, limit int) ([]models.Prediction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, match_id, home_team, away_team, league, match_date, match_time,
			bet, confidence, rule_id, alternatives, status, result, note, created_at, updated_at
		FROM predictions
		WHERE result = $1
		ORDER BY match_date, created_at
		LIMIT $2`,
		enums.StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		var alternatives []byte
		if err := rows.Scan(&p.ID, &p.RunID, &p.MatchID, &p.HomeTeam, &p.AwayTeam, &p.League,
			&p.MatchDate, &p.MatchTime, &p.Bet, &p.Confidence, &p.RuleID, &alternatives,
			&p.Status, &p.Result, &p.Note, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if len(alternatives) > 0 {
			if err := json.Unmarshal(alternatives, &p.Alternatives); err != nil {
				return nil, fmt.Errorf("failed to decode alternatives for prediction %s: %w", p.ID, err)
			}
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (s *PostgresStorage) UpdatePredictionResult(ctx context.Context, predictionID string, result enums.PredictionStatus, note string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE predictions SET result = $2, status = $2, note = $3, updated_at = NOW()
		WHERE id = $1 AND result = $4`,
		predictionID, result, note, enums.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update prediction %s: %w", predictionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM predictions WHERE id = $1)`, predictionID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyGraded
	}
	return nil
}

func (s *PostgresStorage) FetchPerformanceWindows(ctx context.Context, since time.Time, minFinished int) ([]models.PerformanceSample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule_id,
			COUNT(*) FILTER (WHERE result = 'won'),
			COUNT(*) FILTER (WHERE result = 'lost'),
			COUNT(*) FILTER (WHERE result = 'pending'),
			COALESCE(AVG(confidence), 0)
		FROM predictions
		WHERE created_at >= $1
		GROUP BY rule_id
		HAVING COUNT(*) FILTER (WHERE result IN ('won', 'lost')) >= $2
		ORDER BY rule_id`,
		since, minFinished)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch performance windows: %w", err)
	}
	defer rows.Close()

	var samples []models.PerformanceSample
	for rows.Next() {
		s := models.PerformanceSample{WindowStart: since}
		if err := rows.Scan(&s.RuleID, &s.WonCount, &s.LostCount, &s.PendingCount, &s.AvgConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan performance sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

func (s *PostgresStorage) FetchConfidenceBuckets(ctx context.Context, since time.Time) ([]models.ConfidenceBucket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			CASE
				WHEN confidence >= 95 THEN '95+'
				WHEN confidence >= 90 THEN '90-94'
				WHEN confidence >= 85 THEN '85-89'
				ELSE '<85'
			END AS bucket,
			COUNT(*) FILTER (WHERE result = 'won'),
			COUNT(*) FILTER (WHERE result = 'lost'),
			COALESCE(AVG(confidence), 0)
		FROM predictions
		WHERE created_at >= $1 AND result IN ('won', 'lost')
		GROUP BY bucket
		ORDER BY bucket`,
		since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch confidence buckets: %w", err)
	}
	defer rows.Close()

	var buckets []models.ConfidenceBucket
	for rows.Next() {
		var b models.ConfidenceBucket
		if err := rows.Scan(&b.Bucket, &b.WonCount, &b.LostCount, &b.AvgConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan confidence bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (s *PostgresStorage) FetchLeaguePerformance(ctx context.Context, since time.Time, minFinished int) ([]models.LeaguePerformance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT league,
			COUNT(*) FILTER (WHERE result = 'won'),
			COUNT(*) FILTER (WHERE result = 'lost')
		FROM predictions
		WHERE created_at >= $1 AND result IN ('won', 'lost')
		GROUP BY league
		HAVING COUNT(*) >= $2
		ORDER BY league`,
		since, minFinished)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch league performance: %w", err)
	}
	defer rows.Close()

	var leagues []models.LeaguePerformance
	for rows.Next() {
		var l models.LeaguePerformance
		if err := rows.Scan(&l.League, &l.WonCount, &l.LostCount); err != nil {
			return nil, fmt.Errorf("failed to scan league performance: %w", err)
		}
		leagues = append(leagues, l)
	}
	return leagues, rows.Err()
}

// --- RunStore ---

func (s *PostgresStorage) CreateRun(ctx context.Context, run *models.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, status, started_at, date_from, date_to, leagues, min_confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.Status, run.StartedAt, run.DateFrom, run.DateTo,
		pq.Array(run.Leagues), run.MinConfidence)
	if err != nil {
		return fmt.Errorf("failed to create run %s: %w", run.ID, err)
	}
	return nil
}

func (s *PostgresStorage) CompleteRun(ctx context.Context, run *models.Run) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET status = $2, completed_at = $3, matches_processed = $4,
			opportunities_found = $5, execution_time_ms = $6, error_message = $7
		WHERE id = $1`,
		run.ID, run.Status, run.CompletedAt, run.MatchesProcessed,
		run.OpportunitiesFound, run.ExecutionTimeMS, run.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to complete run %s: %w", run.ID, err)
	}
	return nil
}

// --- CandidateStore ---

func (s *PostgresStorage) GetCandidate(ctx context.Context, candidateID string) (*models.CandidateRule, error) {
	var c models.CandidateRule
	var conditions []byte
	var lastTestedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT candidate_id, name, description, prediction_text, confidence_base,
			conditions, test_status, created_by, last_tested_at
		FROM candidate_rules WHERE candidate_id = $1`,
		candidateID).Scan(&c.CandidateID, &c.Name, &c.Description, &c.PredictionText,
		&c.ConfidenceBase, &conditions, &c.TestStatus, &c.CreatedBy, &lastTestedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate %s: %w", candidateID, err)
	}
	if err := json.Unmarshal(conditions, &c.Conditions); err != nil {
		return nil, fmt.Errorf("failed to decode conditions for candidate %s: %w", candidateID, err)
	}
	if lastTestedAt.Valid {
		c.LastTestedAt = lastTestedAt.Time
	}
	return &c, nil
}

func (s *PostgresStorage) SaveCandidate(ctx context.Context, candidate *models.CandidateRule) error {
	conditions, err := json.Marshal(candidate.Conditions)
	if err != nil {
		return fmt.Errorf("failed to encode conditions: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO candidate_rules (candidate_id, name, description, prediction_text,
			confidence_base, conditions, test_status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (candidate_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			prediction_text = EXCLUDED.prediction_text,
			confidence_base = EXCLUDED.confidence_base,
			conditions = EXCLUDED.conditions`,
		candidate.CandidateID, candidate.Name, candidate.Description, candidate.PredictionText,
		candidate.ConfidenceBase, conditions, candidate.TestStatus, candidate.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", candidate.CandidateID, err)
	}
	return nil
}

func (s *PostgresStorage) UpdateCandidateStatus(ctx context.Context, candidateID string, status enums.TestStatus, testedAt time.Time) error {
	var tested sql.NullTime
	if !testedAt.IsZero() {
		tested = sql.NullTime{Time: testedAt, Valid: true}
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE candidate_rules SET test_status = $2,
			last_tested_at = COALESCE($3, last_tested_at)
		WHERE candidate_id = $1`,
		candidateID, status, tested)
	if err != nil {
		return fmt.Errorf("failed to update candidate %s: %w", candidateID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) SaveTestRun(ctx context.Context, run *models.TestRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sandbox_test_runs (test_run_id, test_name, candidate_id, period_start,
			period_end, baseline_mode, baseline_rule_id, total_matches,
			candidate_predictions, candidate_wins, candidate_losses, candidate_win_rate,
			baseline_predictions, baseline_wins, baseline_losses, baseline_win_rate,
			win_rate_delta, p_value, is_significant, recommendation, reason, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		run.TestRunID, run.TestName, run.CandidateID, run.PeriodStart, run.PeriodEnd,
		run.BaselineMode, run.BaselineRuleID, run.TotalMatches,
		run.CandidatePredictions, run.CandidateWins, run.CandidateLosses, run.CandidateWinRate,
		run.BaselinePredictions, run.BaselineWins, run.BaselineLosses, run.BaselineWinRate,
		run.WinRateDelta, run.PValue, run.IsSignificant, run.Recommendation, run.Reason,
		run.ExecutedAt)
	if err != nil {
		return fmt.Errorf("failed to save test run %s: %w", run.TestRunID, err)
	}
	return nil
}

func (s *PostgresStorage) FetchTestRuns(ctx context.Context, candidateID string) ([]models.TestRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT test_run_id, test_name, candidate_id, period_start, period_end,
			baseline_mode, baseline_rule_id, total_matches,
			candidate_predictions, candidate_wins, candidate_losses, candidate_win_rate,
			baseline_predictions, baseline_wins, baseline_losses, baseline_win_rate,
			win_rate_delta, p_value, is_significant, recommendation, reason, executed_at
		FROM sandbox_test_runs
		WHERE candidate_id = $1
		ORDER BY executed_at DESC`,
		candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch test runs: %w", err)
	}
	defer rows.Close()

	var runs []models.TestRun
	for rows.Next() {
		var r models.TestRun
		if err := rows.Scan(&r.TestRunID, &r.TestName, &r.CandidateID, &r.PeriodStart, &r.PeriodEnd,
			&r.BaselineMode, &r.BaselineRuleID, &r.TotalMatches,
			&r.CandidatePredictions, &r.CandidateWins, &r.CandidateLosses, &r.CandidateWinRate,
			&r.BaselinePredictions, &r.BaselineWins, &r.BaselineLosses, &r.BaselineWinRate,
			&r.WinRateDelta, &r.PValue, &r.IsSignificant, &r.Recommendation, &r.Reason,
			&r.ExecutedAt); err != nil {
			return nil, fmt.Errorf("failed to scan test run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// --- AdvisoryStore ---

func (s *PostgresStorage) SaveAdvisory(ctx context.Context, advisory *models.Advisory) (bool, error) {
	data, err := json.Marshal(advisory.Data)
	if err != nil {
		return false, fmt.Errorf("failed to encode advisory data: %w", err)
	}
	actions, err := json.Marshal(advisory.Actions)
	if err != nil {
		return false, fmt.Errorf("failed to encode advisory actions: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO advisories (suggestion_id, severity, category, title, description,
			data, recommendation, justification, actions, action_required, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (suggestion_id) DO NOTHING`,
		advisory.SuggestionID, advisory.Severity, advisory.Category, advisory.Title,
		advisory.Description, data, advisory.Recommendation, advisory.Justification,
		actions, advisory.ActionRequired, advisory.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to save advisory %s: %w", advisory.SuggestionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
