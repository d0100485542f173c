package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"time"

	"github.com/calotrack/calorie-backend/internal/config"
)

var (
	// ErrScorerTimeout means the external process did not finish within the
	// configured deadline and was killed.
	ErrScorerTimeout = errors.New("scorer timed out")
	// ErrScorerOutput means the process finished but its stdout did not
	// satisfy the output contract.
	ErrScorerOutput = errors.New("malformed scorer output")
	// ErrScorerFailed means the scorer itself reported a failure through the
	// success flag of its output.
	ErrScorerFailed = errors.New("scorer reported failure")
)

// PredictionInput carries the validated physiological and activity
// parameters handed to the scorer.
type PredictionInput struct {
	ActivityType string
	Weight       float64
	Height       float64
	Age          int
	Duration     int
	HeartRate    int
}

type ScoreResult struct {
	Calories float64
	Raw      []byte // verbatim stdout, persisted for diagnostics
}

// Scorer maps prediction inputs to a calorie estimate.
type Scorer interface {
	Score(ctx context.Context, in PredictionInput) (*ScoreResult, error)
}

// ScriptScorer invokes the prediction script as a subprocess, once per call.
// Arguments are positional: age weight height duration heartRate
// activityType. Stdout must be a JSON object
// {"success": bool, "calories": number, "message": string}; stderr is
// captured for logging only and never surfaced to callers.
type ScriptScorer struct {
	bin     string
	script  string
	timeout time.Duration
}

func NewScriptScorer(cfg *config.Config) *ScriptScorer {
	return &ScriptScorer{
		bin:     cfg.ScorerBin,
		script:  cfg.ScorerScript,
		timeout: cfg.ScorerTimeout,
	}
}

type scorerOutput struct {
	Success  bool    `json:"success"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

func (s *ScriptScorer) Score(ctx context.Context, in PredictionInput) (*ScoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.bin,
		s.script,
		strconv.Itoa(in.Age),
		strconv.FormatFloat(in.Weight, 'f', -1, 64),
		strconv.FormatFloat(in.Height, 'f', -1, 64),
		strconv.Itoa(in.Duration),
		strconv.Itoa(in.HeartRate),
		in.ActivityType,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Releases Wait even when a grandchild keeps the pipe open after the kill.
	cmd.WaitDelay = 2 * time.Second

	err := cmd.Run()
	if stderr.Len() > 0 {
		slog.Warn("scorer stderr", "action", "predict", "stderr", stderr.String())
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Error("scorer killed after deadline", "action", "predict", "timeout", s.timeout.String())
		return nil, ErrScorerTimeout
	}
	if err != nil {
		return nil, fmt.Errorf("scorer process: %w", err)
	}

	raw := bytes.TrimSpace(stdout.Bytes())
	var out scorerOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Error("scorer output unparseable", "action", "predict", "error", err.Error(), "stdout", string(raw))
		return nil, fmt.Errorf("%w: %v", ErrScorerOutput, err)
	}
	if !out.Success {
		slog.Error("scorer reported failure", "action", "predict", "error", out.Message)
		return nil, fmt.Errorf("%w: %s", ErrScorerFailed, out.Message)
	}
	if out.Calories <= 0 {
		return nil, fmt.Errorf("%w: non-positive calorie value", ErrScorerOutput)
	}

	return &ScoreResult{Calories: out.Calories, Raw: raw}, nil
}
