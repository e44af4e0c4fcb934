package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/spacesedan/sentilens/internal/translation"
)

// LambdaInvoker is the part of *lambda.Client the translator uses.
type LambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LambdaTranslatorRequest is the chunked payload of translator functions.
type LambdaTranslatorRequest struct {
	Chunks     [][]string `json:"chunks"`
	TargetLang string     `json:"target_lang,omitempty"`
}

type LambdaTranslatorResponse struct {
	Translations [][]string `json:"translations"`
	Error        string     `json:"error,omitempty"`
}

// LambdaTranslator invokes a translator function deployed on AWS Lambda.
// Text is sent as sentence groups of at most ChunkChars runes in a single
// invocation, and the translated sentences are joined back in order.
type LambdaTranslator struct {
	Invoker      LambdaInvoker
	FunctionName string
	ChunkChars   int
	Timeout      time.Duration
}

func NewLambdaTranslator(ctx context.Context, functionName string, chunkChars int, timeout time.Duration) (*LambdaTranslator, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	slog.Info("[LambdaClient] AWS Config Initialized",
		slog.String("function", functionName),
		slog.String("region", cfg.Region))

	return &LambdaTranslator{
		Invoker:      lambda.NewFromConfig(cfg),
		FunctionName: functionName,
		ChunkChars:   chunkChars,
		Timeout:      timeout,
	}, nil
}

func (l *LambdaTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	start := time.Now()

	chunks := buildLambdaChunks(text, l.ChunkChars)
	if len(chunks) == 0 {
		return "", translation.ErrEmptyTranslation
	}

	req := LambdaTranslatorRequest{Chunks: chunks}
	// en-* functions serve several target languages and need to be told
	// which one; *-en functions always produce English.
	if source == "en" {
		req.TargetLang = target
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	result, err := l.Invoker.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(l.FunctionName),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke %s: %w", l.FunctionName, err)
	}
	if result.FunctionError != nil {
		return "", fmt.Errorf("lambda error: %s", *result.FunctionError)
	}

	var resp LambdaTranslatorResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("translator error: %s", resp.Error)
	}
	if len(resp.Translations) != len(chunks) {
		return "", fmt.Errorf("translator returned %d chunks, sent %d", len(resp.Translations), len(chunks))
	}

	var parts []string
	for i, translated := range resp.Translations {
		if len(translated) != len(chunks[i]) {
			return "", fmt.Errorf("chunk %d: translator returned %d texts, sent %d", i+1, len(translated), len(chunks[i]))
		}
		for _, t := range translated {
			if t = strings.TrimSpace(t); t != "" {
				parts = append(parts, t)
			}
		}
	}

	slog.Info("[LambdaClient] Translation invoke successful",
		slog.String("function", l.FunctionName),
		slog.Int("chunks", len(chunks)),
		slog.Duration("elapsed", time.Since(start)))
	return strings.Join(parts, " "), nil
}

// buildLambdaChunks groups the trimmed sentences of text for the chunked
// payload. Blank sentences are dropped.
func buildLambdaChunks(text string, maxChars int) [][]string {
	var chunks [][]string
	for _, group := range translation.ChunkSegments(text, maxChars) {
		var texts []string
		for _, segment := range group {
			if segment = strings.TrimSpace(segment); segment != "" {
				texts = append(texts, segment)
			}
		}
		if len(texts) > 0 {
			chunks = append(chunks, texts)
		}
	}
	return chunks
}
