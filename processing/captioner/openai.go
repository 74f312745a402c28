package captioner

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultVisionModel = "gpt-4o-mini"

// OpenAI captions images through the OpenAI vision API.
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = defaultVisionModel
	}

	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (o *OpenAI) Name() string {
	return o.model
}

// Load verifies the credentials with a cheap API call.
func (o *OpenAI) Load(ctx context.Context) error {
	if _, err := o.client.Models.List(ctx); err != nil {
		return fmt.Errorf("%w: verify API access: %v", ErrModelLoad, err)
	}
	return nil
}

func (o *OpenAI) Generate(ctx context.Context, path string, opts Options) (string, error) {
	opts = opts.withDefaults()

	frame, err := encodeRGB(path)
	if err != nil {
		return "", err
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame)

	prompt := fmt.Sprintf(
		"Describe this image in one sentence of at most %d words, suitable as alt text for a visually impaired reader. Respond with the caption only.",
		opts.MaxLength,
	)

	// Beam width has no API equivalent; only the length bound carries over.
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
		MaxCompletionTokens: openai.Int(int64(opts.MaxLength * 2)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCaption, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion returned", ErrCaption)
	}

	caption := strings.TrimSpace(resp.Choices[0].Message.Content)
	if caption == "" {
		return "", fmt.Errorf("%w: model returned an empty caption", ErrCaption)
	}

	return caption, nil
}
