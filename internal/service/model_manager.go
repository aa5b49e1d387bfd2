package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/util"
	"github.com/kapu/youtube-growth-monitor/pkg/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ModelManager generates text with Gemini, falling back to OpenAI when
// Gemini fails and fallback is enabled. A shared circuit breaker guards
// both providers; title generation is advisory, so an open circuit just
// means the caller uses canned variants.
type ModelManager struct {
	geminiClient   *genai.Client
	openaiClient   *openai.Client
	logger         *zap.Logger
	geminiModel    string
	openaiModel    string
	enableFallback bool
	circuitBreaker *util.CircuitBreaker
}

type ModelManagerConfig struct {
	GeminiAPIKey   string
	OpenAIAPIKey   string
	GeminiModel    string
	OpenAIModel    string
	EnableFallback bool
}

// GenerateMetadata records which provider served a generation.
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

const (
	breakerFailureThreshold = 3
	breakerResetTimeout     = 5 * time.Minute
	breakerRateLimitTimeout = 15 * time.Minute
	breakerHealthInterval   = 2 * time.Minute
)

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	geminiModel := cfg.GeminiModel
	if geminiModel == "" {
		geminiModel = "gemini-2.5-flash"
	}
	openaiModel := cfg.OpenAIModel
	if openaiModel == "" {
		openaiModel = "gpt-4.1-mini"
	}

	mm := &ModelManager{
		geminiClient:   geminiClient,
		logger:         logger,
		geminiModel:    geminiModel,
		openaiModel:    openaiModel,
		enableFallback: cfg.EnableFallback && cfg.OpenAIAPIKey != "",
	}

	if cfg.OpenAIAPIKey != "" {
		client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
		mm.openaiClient = &client
		logger.Info("OpenAI fallback enabled", zap.String("model", openaiModel))
	} else {
		logger.Info("OpenAI fallback disabled (no API key)")
	}

	mm.circuitBreaker = util.NewCircuitBreaker(
		breakerFailureThreshold,
		breakerResetTimeout,
		breakerHealthInterval,
		mm.healthCheckPing,
		logger,
	)

	return mm, nil
}

// GenerateText runs the prompt against Gemini first, then OpenAI if the
// fallback is enabled.
func (mm *ModelManager) GenerateText(ctx context.Context, prompt string) (string, *GenerateMetadata, error) {
	if !mm.circuitBreaker.CanExecute() {
		return "", nil, errors.NewAPIError("Circuit breaker open", 503, map[string]any{
			"service": "ai-providers",
			"state":   mm.circuitBreaker.GetState(),
		})
	}

	geminiText, geminiErr := mm.generateWithGemini(ctx, prompt)
	if geminiErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return geminiText, &GenerateMetadata{Provider: "Gemini", Model: mm.geminiModel}, nil
	}

	if !mm.enableFallback || mm.openaiClient == nil {
		mm.recordFailure(geminiErr)
		return "", nil, geminiErr
	}

	openaiText, openaiErr := mm.generateWithOpenAI(ctx, prompt)
	if openaiErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return openaiText, &GenerateMetadata{Provider: "OpenAI", Model: mm.openaiModel, UsedFallback: true}, nil
	}

	mm.recordFailure(geminiErr)
	mm.recordFailure(openaiErr)
	return "", nil, errors.NewServiceError("all AI providers failed", "ai-providers", "generate",
		fmt.Errorf("gemini: %v; openai: %v", geminiErr, openaiErr))
}

func (mm *ModelManager) recordFailure(err error) {
	if !mm.isServiceFailure(err) {
		return
	}
	timeout := time.Duration(0)
	if mm.isRateLimitError(err) {
		timeout = breakerRateLimitTimeout
	}
	mm.circuitBreaker.RecordFailure(timeout)
}

func (mm *ModelManager) generateWithGemini(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.9)
	topP := float32(0.95)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: 1024,
	}

	mm.logger.Debug("Generating with Gemini", zap.String("model", mm.geminiModel))

	resp, err := mm.geminiClient.Models.GenerateContent(ctx, mm.geminiModel, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, config)
	if err != nil {
		mm.logger.Error("Gemini generation failed", zap.Error(err))
		return "", err
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	previewLen := util.Min(len(text), 200)
	mm.logger.Debug("Gemini response received",
		zap.Int("length", len(text)),
		zap.String("preview", text[:previewLen]))
	return text, nil
}

func (mm *ModelManager) generateWithOpenAI(ctx context.Context, prompt string) (string, error) {
	if mm.openaiClient == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	mm.logger.Info("Fallback: Generating with OpenAI", zap.String("model", mm.openaiModel))

	var model openai.ChatModel
	switch mm.openaiModel {
	case "gpt-4.1":
		model = openai.ChatModelGPT4_1
	case "gpt-4.1-mini":
		model = openai.ChatModelGPT4_1Mini
	case "gpt-4.1-nano":
		model = openai.ChatModelGPT4_1Nano
	case "gpt-4o":
		model = openai.ChatModelGPT4o
	case "gpt-4o-mini":
		model = openai.ChatModelGPT4oMini
	default:
		model = openai.ChatModelGPT4_1Mini
	}

	resp, err := mm.openaiClient.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(1024),
		Temperature:         openai.Float(0.9),
	})
	if err != nil {
		mm.logger.Error("OpenAI generation failed", zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	text := resp.Choices[0].Message.Content
	mm.logger.Info("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens))

	return text, nil
}

func (mm *ModelManager) healthCheckPing() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	geminiOK := mm.pingGemini(ctx)
	openaiOK := false
	if mm.enableFallback && mm.openaiClient != nil {
		openaiOK = mm.pingOpenAI(ctx)
	}

	healthy := geminiOK || openaiOK
	mm.logger.Info("Health Check: Result",
		zap.Bool("gemini", geminiOK),
		zap.Bool("openai", openaiOK),
		zap.Bool("healthy", healthy))
	return healthy
}

func (mm *ModelManager) pingGemini(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: 10,
	}

	resp, err := mm.geminiClient.Models.GenerateContent(ctx, mm.geminiModel, []*genai.Content{
		{Parts: []*genai.Part{{Text: "ping"}}},
	}, config)
	if err != nil {
		mm.logger.Debug("Gemini ping failed", zap.Error(err))
		return false
	}

	return extractTextFromGeminiResponse(resp) != ""
}

func (mm *ModelManager) pingOpenAI(ctx context.Context) bool {
	if mm.openaiClient == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := mm.openaiClient.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("ping"),
		},
		MaxCompletionTokens: openai.Int(10),
		Temperature:         openai.Float(0),
	})
	if err != nil {
		mm.logger.Debug("OpenAI ping failed", zap.Error(err))
		return false
	}

	return len(resp.Choices) > 0
}

func (mm *ModelManager) isServiceFailure(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	if strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT") {
		return true
	}
	if mm.isRateLimitError(err) {
		return true
	}

	statusRegex := regexp.MustCompile(`\b(5\d{2})\b`)
	if statusRegex.MatchString(msg) {
		return true
	}

	codeRegex := regexp.MustCompile(`"code":(\d{3})`)
	if matches := codeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, err := strconv.Atoi(matches[1]); err == nil {
			return code >= 500 && code < 600
		}
	}

	return false
}

func (mm *ModelManager) isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "Rate limit") ||
		strings.Contains(msg, "quota")
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
