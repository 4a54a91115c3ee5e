// internal/workers/career/generate-pathway/handler.go
package generatepathway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/everupward248/hackathon-oct25/internal/catalog"
	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/metrics"
	"github.com/everupward248/hackathon-oct25/internal/models"
	"github.com/everupward248/hackathon-oct25/internal/pathway"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "generate-pathway"
)

type Handler struct {
	config  *Config
	catalog catalog.Provider
	logger  logger.Logger
}

// NewHandler wires the generator to a catalog provider. The provider may
// be nil when workflows always pass jobs inline.
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
		code := "PATHWAY_FAILED"
		if commonerrors.IsNotFound(err) {
			code = "TARGET_JOB_NOT_FOUND"
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.failJob(client, job, code, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.TargetJobID == "" {
		return nil, commonerrors.NewBusinessRuleError("targetJobId", "target job is required")
	}

	jobs, target, err := h.resolveTarget(ctx, input)
	if err != nil {
		return nil, err
	}

	req := pathway.Request{
		CurrentRole:   input.CurrentRole,
		CurrentSalary: input.CurrentSalary,
		CurrentSkills: input.CurrentSkills,
	}

	p := pathway.Generate(target, jobs, req)
	gap := pathway.AnalyzeSkillsGap(target, p, input.CurrentSkills)
	projections, metrics := pathway.ProjectFinancials(p, input.CurrentAge, input.LifestyleCost)

	output := &Output{
		AssessmentID: input.AssessmentID,
		Pathway:      p,
		SkillsGap:    gap,
		Projections:  projections,
		Metrics:      metrics,
	}

	if input.IncludeOptions {
		output.Options = pathway.GenerateOptions(target, jobs, req)
	}

	h.logger.Info("pathway generated", map[string]interface{}{
		"assessmentId": input.AssessmentID,
		"targetJobId":  input.TargetJobID,
		"steps":        len(p.Steps),
		"timeline":     p.Timeline,
	})

	return output, nil
}

// resolveTarget locates the target job in the inline job list or the
// catalog, returning the job pool the generator may draw stepping stones
// from.
func (h *Handler) resolveTarget(ctx context.Context, input *Input) ([]models.Job, models.Job, error) {
	if input.Jobs != nil {
		for _, job := range input.Jobs {
			if job.ID == input.TargetJobID {
				return input.Jobs, job, nil
			}
		}
		return nil, models.Job{}, commonerrors.NewTargetJobNotFoundError(input.TargetJobID)
	}

	if h.catalog == nil {
		return nil, models.Job{}, commonerrors.NewBusinessRuleError("catalog", "no catalog configured and no inline jobs supplied")
	}

	target, err := h.catalog.GetJob(ctx, input.TargetJobID)
	if err != nil {
		if commonerrors.IsNotFound(err) {
			return nil, models.Job{}, commonerrors.NewTargetJobNotFoundError(input.TargetJobID)
		}
		return nil, models.Job{}, err
	}

	jobs, err := h.catalog.ListJobs(ctx)
	if err != nil {
		return nil, models.Job{}, err
	}
	return jobs, *target, nil
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
