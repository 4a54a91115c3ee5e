// internal/workers/assessment/calculate-lifestyle-cost/handler.go
package calculatelifestylecost

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/metrics"
	"github.com/everupward248/hackathon-oct25/internal/common/validation"
	"github.com/everupward248/hackathon-oct25/internal/lifestyle"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-lifestyle-cost"
)

// inputSchema rejects malformed variables before the calculator sees
// them; tier values are validated again, with better messages, by the
// calculator itself.
const inputSchema = `{
	"type": "object",
	"required": ["lifestyleConfig"],
	"properties": {
		"assessmentId": {"type": "string"},
		"lifestyleConfig": {
			"type": "object",
			"required": ["bedrooms", "housingLocation", "familySize", "transportationType",
			             "groceryLevel", "diningFrequency", "entertainmentLevel", "savingsGoal"],
			"properties": {
				"bedrooms": {"type": "integer", "minimum": 0},
				"housingLocation": {"type": "string"},
				"familySize": {"type": "integer", "minimum": 1},
				"numChildren": {"type": "integer", "minimum": 0},
				"childcareType": {"type": "string"},
				"transportationType": {"type": "string"},
				"groceryLevel": {"type": "string"},
				"diningFrequency": {"type": "string"},
				"entertainmentLevel": {"type": "string"},
				"hasGym": {"type": "boolean"},
				"savingsGoal": {"type": "string"}
			}
		},
		"targetSalaryMin": {"type": "number", "minimum": 0},
		"targetSalaryMax": {"type": "number", "minimum": 0}
	}
}`

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	raw := []byte(job.Variables)

	check, err := validation.ValidateJSON(raw, inputSchema)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("validate input: %v", err))
		return
	}
	if !check.Valid {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "INVALID_CONFIGURATION").Inc()
		h.failJob(client, job, "INVALID_CONFIGURATION", check.FirstError())
		return
	}

	var input Input
	if err := json.Unmarshal(raw, &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "INVALID_CONFIGURATION").Inc()
		h.failJob(client, job, "INVALID_CONFIGURATION", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	result, err := lifestyle.Calculate(input.LifestyleConfig)
	if err != nil {
		return nil, err
	}

	output := &Output{
		AssessmentID:          input.AssessmentID,
		CostResult:            result,
		RequiredAnnualSalary:  result.RequiredAnnualSalary,
		FormattedMonthlyTotal: lifestyle.FormatCurrency(result.Monthly.Total),
	}

	// A target salary range turns the assessment into an affordability
	// check as well.
	if input.TargetSalaryMax > 0 {
		affordability := lifestyle.CompareToSalary(result.Monthly.Total, input.TargetSalaryMin, input.TargetSalaryMax)
		output.Affordability = &affordability

		if !affordability.IsAffordable {
			avg := (input.TargetSalaryMin + input.TargetSalaryMax) / 2
			suggestions, err := lifestyle.SuggestAdjustments(input.LifestyleConfig, avg)
			if err != nil {
				return nil, err
			}
			output.Suggestions = suggestions
		}
	}

	metrics.AssessmentsScored.Inc()

	h.logger.Info("lifestyle cost calculated", map[string]interface{}{
		"assessmentId": input.AssessmentID,
		"monthlyTotal": result.Monthly.Total,
		"annualSalary": result.RequiredAnnualSalary,
	})

	return output, nil
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
