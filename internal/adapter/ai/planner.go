// Package ai implements the external scheduling collaborator on top of an
// OpenAI-compatible chat completion API. It is deliberately thin: it builds
// a prompt from the pending tasks, asks for a JSON placement list and maps
// it back to domain slots. Nothing here writes to the store.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"flow/internal/core/domain"
	"flow/internal/core/ports"
)

const plannerSystemPrompt = `You are a task scheduler. Place every task inside the available window
without overlaps, putting High energy tasks earlier and Low energy tasks later.
Respond with a JSON array only, each element shaped as
{"task_id": "...", "planned_time": "HH:MM", "sort_order": 0}.`

type Planner struct {
	client openai.Client
	model  string
}

var _ ports.SchedulePlanner = (*Planner)(nil)

func NewPlanner(apiKey, model string) *Planner {
	return &Planner{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

type plannedSlotPayload struct {
	TaskID      string `json:"task_id"`
	PlannedTime string `json:"planned_time"`
	SortOrder   int    `json:"sort_order"`
}

func (p *Planner) Propose(ctx context.Context, req domain.SchedulingRequest) ([]domain.ScheduledSlot, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(plannerSystemPrompt),
			openai.UserMessage(buildPrompt(req)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("planner completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("planner returned no choices")
	}

	var payload []plannedSlotPayload
	content := extractJSON(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("parsing planner response: %w", err)
	}

	known := make(map[string]bool, len(req.Tasks))
	for _, t := range req.Tasks {
		known[t.ID] = true
	}

	slots := make([]domain.ScheduledSlot, 0, len(payload))
	for _, item := range payload {
		// Drop hallucinated task ids instead of failing the whole proposal.
		if !known[item.TaskID] {
			continue
		}
		plannedTime, err := domain.ParseTimeOfDay(item.PlannedTime)
		if err != nil {
			return nil, fmt.Errorf("planner proposed %q: %w", item.PlannedTime, err)
		}
		slots = append(slots, domain.ScheduledSlot{
			TaskID:      item.TaskID,
			PlannedTime: plannedTime,
			SortOrder:   item.SortOrder,
		})
	}
	return slots, nil
}

func buildPrompt(req domain.SchedulingRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Schedule these %d tasks starting at %s", len(req.Tasks), req.StartTime)
	if req.AvailableHours > 0 {
		fmt.Fprintf(&b, " within %.1f available hours", req.AvailableHours)
	}
	b.WriteString(":\n")
	for _, t := range req.Tasks {
		name, tag, energy := "Unknown", "General", domain.EnergyMedium
		if t.Activity != nil {
			name, tag, energy = t.Activity.Name, t.Activity.Tag, t.Activity.EnergyLevel
		}
		fmt.Fprintf(&b, "- id=%s %s (%dmin, %s, %s energy)\n", t.ID, name, t.DurationMinutes(), tag, energy)
	}
	return b.String()
}

// extractJSON strips an optional markdown code fence around the payload.
func extractJSON(content string) string {
	trimmed := strings.TrimSpace(content)
	if start := strings.Index(trimmed, "```"); start != -1 {
		trimmed = trimmed[start+3:]
		trimmed = strings.TrimPrefix(trimmed, "json")
		if end := strings.Index(trimmed, "```"); end != -1 {
			trimmed = trimmed[:end]
		}
	}
	return strings.TrimSpace(trimmed)
}
