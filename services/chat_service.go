package services

import (
	"context"

	"tea-shop/config"

	openai "github.com/sashabaranov/go-openai"
)

const chatSystemPrompt = `You are a knowledgeable and friendly tea expert working for the Inner Veda online tea store. Your role is to help customers discover the perfect teas, provide brewing guidance, and share tea knowledge.

KEY INFORMATION ABOUT OUR TEA STORE:
- We specialize in premium single-origin teas and ayurvedic wellness blends
- Our signature product is "A-ZEN", a calming herbal blend
- We carry: Black teas (Earl Grey, English Breakfast, Assam, Ceylon, Darjeeling), Green teas (Sencha, Matcha, Jasmine Green, Gunpowder, Dragon Well), White teas (Silver Needle, White Peony, Moonlight White), Oolong teas (Tie Guan Yin, Da Hong Pao, Milk Oolong), Herbal teas (Chamomile, Peppermint, Rooibos, Hibiscus, Ginger)

BREWING GUIDELINES:
- Water temperatures: 175°F for green, 185°F for white, 195°F for oolong, 212°F for black
- Steeping times: 2-3 min for green, 3-4 min for white, 4-5 min for oolong, 3-5 min for black
- Always use fresh, filtered water and quality loose leaf tea

YOUR PERSONALITY:
- Enthusiastic and knowledgeable about tea
- Helpful and personalized in recommendations
- Conversational but concise (keep responses under 150 words)
- Use tea-related emojis occasionally 🍃☕🫖

GUIDELINES:
- Ask follow-up questions to better understand customer preferences
- Provide specific tea recommendations from our inventory
- Include brewing tips when relevant
- If asked about non-tea topics, politely redirect to tea-related discussion`

// FallbackReply is returned when the completion backend cannot be
// reached; the widget shows it as a normal bot message.
const FallbackReply = "Sorry, I encountered an issue connecting to our tea expert AI. Please try again! I'm here to help you discover amazing teas. 🍃☕"

const unconfiguredReply = "Hi! I'm your tea expert assistant. I'd love to help you discover the perfect tea, but the AI service is not configured yet. Please check back soon to unlock my full tea expertise! 🍃"

// ChatCompleter is the slice of the OpenAI client the service needs;
// tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type ChatService struct {
	client ChatCompleter
}

func NewChatService() *ChatService {
	apiKey := ""
	if config.AppConfig != nil {
		apiKey = config.AppConfig.OpenAIAPIKey
	}
	if apiKey == "" {
		return &ChatService{}
	}
	return &ChatService{client: openai.NewClient(apiKey)}
}

func NewChatServiceWithClient(client ChatCompleter) *ChatService {
	return &ChatService{client: client}
}

func (s *ChatService) Configured() bool {
	return s.client != nil
}

// Reply proxies one user message through the completion API with the
// fixed tea-expert system prompt. An unconfigured service answers
// with a friendly notice instead of failing.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return unconfiguredReply, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I'm sorry, I couldn't generate a response. Please try again!", nil
	}
	return resp.Choices[0].Message.Content, nil
}
