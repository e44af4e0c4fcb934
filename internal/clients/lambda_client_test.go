package clients

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	calls       int
	input       *lambda.InvokeInput
	output      *lambda.InvokeOutput
	err         error
	hasDeadline bool
}

func (f *fakeInvoker) Invoke(ctx context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.calls++
	f.input = params
	_, f.hasDeadline = ctx.Deadline()
	return f.output, f.err
}

func payload(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestLambdaTranslate(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		Payload: payload(t, LambdaTranslatorResponse{Translations: [][]string{{"I hate the rain."}}}),
	}}
	tr := &LambdaTranslator{Invoker: invoker, FunctionName: "translator-romance-en"}

	out, err := tr.Translate(context.Background(), "Odio la lluvia.", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "I hate the rain.", out)

	assert.Equal(t, "translator-romance-en", aws.ToString(invoker.input.FunctionName))
	var req LambdaTranslatorRequest
	require.NoError(t, json.Unmarshal(invoker.input.Payload, &req))
	assert.Equal(t, [][]string{{"Odio la lluvia."}}, req.Chunks)
	assert.Empty(t, req.TargetLang)
}

func TestLambdaTranslateFromEnglishSetsTarget(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		Payload: payload(t, LambdaTranslatorResponse{Translations: [][]string{{"Hola"}}}),
	}}
	tr := &LambdaTranslator{Invoker: invoker, FunctionName: "translator-en-romance"}

	_, err := tr.Translate(context.Background(), "Hello", "en", "es")
	require.NoError(t, err)

	var req LambdaTranslatorRequest
	require.NoError(t, json.Unmarshal(invoker.input.Payload, &req))
	assert.Equal(t, "es", req.TargetLang)
}

func TestLambdaTranslateErrors(t *testing.T) {
	tests := []struct {
		name    string
		invoker *fakeInvoker
	}{
		{"invoke error", &fakeInvoker{err: errors.New("throttled")}},
		{"function error", &fakeInvoker{output: &lambda.InvokeOutput{FunctionError: aws.String("Unhandled")}}},
		{"bad payload", &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte("nope")}}},
		{"translator error", &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`{"error":"model not loaded"}`)}}},
		{"no translations", &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`{"translations":[]}`)}}},
		{"short chunk", &fakeInvoker{output: &lambda.InvokeOutput{Payload: []byte(`{"translations":[[]]}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &LambdaTranslator{Invoker: tt.invoker, FunctionName: "fn"}
			_, err := tr.Translate(context.Background(), "hola", "es", "en")
			assert.Error(t, err)
		})
	}
}

func TestLambdaTranslateSendsSentenceChunks(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		Payload: payload(t, LambdaTranslatorResponse{Translations: [][]string{
			{"One two.", "Three."},
			{"Four five six."},
		}}),
	}}
	tr := &LambdaTranslator{Invoker: invoker, FunctionName: "fn", ChunkChars: 16}

	out, err := tr.Translate(context.Background(), "Uno dos. Tres.  Cuatro cinco.", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "One two. Three. Four five six.", out)
	assert.Equal(t, 1, invoker.calls)

	var req LambdaTranslatorRequest
	require.NoError(t, json.Unmarshal(invoker.input.Payload, &req))
	assert.Equal(t, [][]string{{"Uno dos.", "Tres."}, {"Cuatro cinco."}}, req.Chunks)
}

func TestLambdaTranslateLongTextIsChunked(t *testing.T) {
	text := strings.Repeat("El servicio fue lento pero la comida estaba rica. ", 264)

	var req LambdaTranslatorRequest
	calls := 0
	tr := &LambdaTranslator{Invoker: invokerFunc(func(params *lambda.InvokeInput) (*lambda.InvokeOutput, error) {
		calls++
		require.NoError(t, json.Unmarshal(params.Payload, &req))
		return &lambda.InvokeOutput{Payload: payload(t, LambdaTranslatorResponse{Translations: req.Chunks})}, nil
	}), FunctionName: "fn", ChunkChars: 4500}

	out, err := tr.Translate(context.Background(), text, "es", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Greater(t, len(req.Chunks), 1)
	for _, chunk := range req.Chunks {
		size := 0
		for _, s := range chunk {
			size += len(s)
		}
		assert.LessOrEqual(t, size, 4500)
	}
	assert.Equal(t, strings.TrimSpace(text), out)
}

func TestLambdaTranslateAppliesTimeout(t *testing.T) {
	invoker := &fakeInvoker{output: &lambda.InvokeOutput{
		Payload: payload(t, LambdaTranslatorResponse{Translations: [][]string{{"Hi."}}}),
	}}

	tr := &LambdaTranslator{Invoker: invoker, FunctionName: "fn", Timeout: time.Second}
	_, err := tr.Translate(context.Background(), "Hola.", "es", "en")
	require.NoError(t, err)
	assert.True(t, invoker.hasDeadline)

	tr.Timeout = 0
	_, err = tr.Translate(context.Background(), "Hola.", "es", "en")
	require.NoError(t, err)
	assert.False(t, invoker.hasDeadline)
}

func TestLambdaTranslateBlankText(t *testing.T) {
	invoker := &fakeInvoker{}
	tr := &LambdaTranslator{Invoker: invoker, FunctionName: "fn"}

	_, err := tr.Translate(context.Background(), "   ", "es", "en")
	assert.Error(t, err)
	assert.Zero(t, invoker.calls)
}

type invokerFunc func(params *lambda.InvokeInput) (*lambda.InvokeOutput, error)

func (f invokerFunc) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	return f(params)
}
