// internal/workers/data-access/query-job-catalog/handler.go
package queryjobcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/everupward248/hackathon-oct25/internal/catalog"
	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/metrics"
	"github.com/everupward248/hackathon-oct25/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "query-job-catalog"
)

var (
	ErrInvalidQueryType = errors.New("INVALID_QUERY_TYPE")
	ErrQueryTimeout     = errors.New("QUERY_TIMEOUT")
)

type Handler struct {
	config  *Config
	catalog catalog.Provider
	logger  logger.Logger
}

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
		errorCode := "QUERY_EXECUTION_FAILED"
		switch {
		case errors.Is(err, ErrInvalidQueryType):
			errorCode = "INVALID_QUERY_TYPE"
		case errors.Is(err, ErrQueryTimeout):
			errorCode = "QUERY_TIMEOUT"
		case commonerrors.IsNotFound(err):
			errorCode = "RESOURCE_NOT_FOUND"
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()

	var jobs []models.Job
	var err error

	switch input.QueryType {
	case QueryAllJobs:
		jobs, err = h.catalog.ListJobs(ctx)
	case QueryJobByID:
		if input.JobID == "" {
			return nil, fmt.Errorf("%w: job_by_id requires jobId", ErrInvalidQueryType)
		}
		var job *models.Job
		job, err = h.catalog.GetJob(ctx, input.JobID)
		if job != nil {
			jobs = []models.Job{*job}
		}
	case QueryJobsByIndustry:
		if input.Industry == "" {
			return nil, fmt.Errorf("%w: jobs_by_industry requires industry", ErrInvalidQueryType)
		}
		jobs, err = h.catalog.JobsByIndustry(ctx, input.Industry)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryType, input.QueryType)
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrQueryTimeout
		}
		return nil, err
	}

	elapsed := time.Since(start).Milliseconds()
	h.logger.Info("catalog query executed", map[string]interface{}{
		"queryType": input.QueryType,
		"rowCount":  len(jobs),
		"elapsedMs": elapsed,
	})

	return &Output{
		Jobs:               jobs,
		RowCount:           len(jobs),
		QueryExecutionTime: elapsed,
	}, nil
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
