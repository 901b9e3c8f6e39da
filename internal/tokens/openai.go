package tokens

import (
	"strings"
	"sync"

	"github.com/tiktoken-go/tokenizer"

	"multi-llm-router/internal/domain"
)

// OpenAICounter provides accurate token counts for OpenAI models using
// tiktoken.
type OpenAICounter struct {
	codecCache map[tokenizer.Encoding]tokenizer.Codec
	cacheMu    sync.RWMutex
}

// NewOpenAICounter creates an OpenAI token counter.
func NewOpenAICounter() *OpenAICounter {
	return &OpenAICounter{
		codecCache: make(map[tokenizer.Encoding]tokenizer.Codec),
	}
}

// SupportsModel returns true for OpenAI models.
func (c *OpenAICounter) SupportsModel(model string) bool {
	model = strings.ToLower(model)
	return strings.HasPrefix(model, "gpt-") || strings.HasPrefix(model, "o1")
}

// modelToEncoding maps the models this router selects to tiktoken
// encodings. gpt-4o and newer use o200k_base; gpt-4 and gpt-3.5 use
// cl100k_base.
func modelToEncoding(model string) tokenizer.Encoding {
	model = strings.ToLower(model)
	switch {
	case strings.HasPrefix(model, "gpt-4o"), strings.HasPrefix(model, "o1"):
		return tokenizer.O200kBase
	case strings.HasPrefix(model, "gpt-4"), strings.HasPrefix(model, "gpt-3.5"):
		return tokenizer.Cl100kBase
	default:
		return tokenizer.O200kBase
	}
}

func (c *OpenAICounter) getCodec(model string) (tokenizer.Codec, error) {
	encoding := modelToEncoding(model)

	c.cacheMu.RLock()
	if cached, ok := c.codecCache[encoding]; ok {
		c.cacheMu.RUnlock()
		return cached, nil
	}
	c.cacheMu.RUnlock()

	codec, err := tokenizer.Get(encoding)
	if err != nil {
		return nil, err
	}

	c.cacheMu.Lock()
	c.codecCache[encoding] = codec
	c.cacheMu.Unlock()

	return codec, nil
}

// CountMessages counts tokens for the messages using tiktoken,
// including the per-message chat formatting overhead documented by
// OpenAI (3 tokens per message, 1 per role, 3 for assistant priming).
func (c *OpenAICounter) CountMessages(model string, messages []domain.Message) int {
	codec, err := c.getCodec(model)
	if err != nil {
		// Tokenizer unavailable; degrade to the estimator.
		return NewEstimator().CountMessages(model, messages)
	}

	const (
		tokensPerMessage = 3
		tokensPerRole    = 1
		assistantPriming = 3
	)

	total := 0
	for _, msg := range messages {
		total += tokensPerMessage + tokensPerRole
		ids, _, _ := codec.Encode(msg.Text())
		total += len(ids)
	}
	return total + assistantPriming
}
