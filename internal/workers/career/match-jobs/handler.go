// internal/workers/career/match-jobs/handler.go
package matchjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/everupward248/hackathon-oct25/internal/catalog"
	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/metrics"
	"github.com/everupward248/hackathon-oct25/internal/matching"
	"github.com/everupward248/hackathon-oct25/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "match-jobs"
)

type Handler struct {
	config  *Config
	catalog catalog.Provider
	logger  logger.Logger
}

// NewHandler wires the matcher to a catalog provider. The provider may be
// nil when workflows always pass jobs inline.
func NewHandler(config *Config, provider catalog.Provider, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: provider,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := string(commonerrors.Code(err))
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	jobs := input.Jobs
	if jobs == nil {
		var err error
		jobs, err = h.loadCatalog(ctx, input.Industry)
		if err != nil {
			return nil, err
		}
	}

	matches := matching.MatchJobsToProfile(jobs, input.Profile)
	total := len(matches)

	if h.config.MaxResults > 0 && len(matches) > h.config.MaxResults {
		matches = matches[:h.config.MaxResults]
	}

	h.logger.Info("jobs matched", map[string]interface{}{
		"assessmentId": input.AssessmentID,
		"scored":       total,
		"returned":     len(matches),
	})

	return &Output{
		AssessmentID: input.AssessmentID,
		Matches:      matches,
		TotalScored:  total,
	}, nil
}

func (h *Handler) loadCatalog(ctx context.Context, industry string) ([]models.Job, error) {
	if h.catalog == nil {
		return nil, commonerrors.NewBusinessRuleError("catalog", "no catalog configured and no inline jobs supplied")
	}
	if industry != "" {
		return h.catalog.JobsByIndustry(ctx, industry)
	}
	return h.catalog.ListJobs(ctx)
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
