package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAITranslatePrompt = `You are a translation engine. Translate the user's text from %s to %s.
Rules:
- Return ONLY the translated text, no quotes, no explanations, no Markdown.
- Keep sentence boundaries and punctuation (., !, ?) exactly where they are, one translated sentence per original sentence.
- Leave names, numbers and URLs unchanged.`

// OpenAITranslator translates through a chat completion.
type OpenAITranslator struct {
	Client *openai.Client
	Model  string
}

func NewOpenAITranslator(apiKey, model string, timeout time.Duration) *OpenAITranslator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	)
	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.Duration("timeout", timeout),
		slog.String("model", model))

	return &OpenAITranslator{Client: client, Model: model}
}

func (o *OpenAITranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	start := time.Now()

	completion, err := o.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(openAITranslatePrompt, source, target)),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(o.Model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		slog.Warn("[OpenAIClient] Translation request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	content := cleanOpenAIResponse(completion.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai returned empty content")
	}

	slog.Info("[OpenAIClient] Translation request successful",
		slog.Duration("elapsed", time.Since(start)))
	return content, nil
}

// cleanOpenAIResponse strips code fences and surrounding quotes the model
// sometimes adds despite the prompt.
func cleanOpenAIResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		content = strings.TrimSpace(content[1 : len(content)-1])
	}
	return content
}
