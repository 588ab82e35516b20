package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"subhub-backend/internal/common/logger"
)

// Client talks to the Telegram Bot API. Unlike a first-party bot client it
// holds no token of its own: the token under validation is supplied per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes client behavior.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a negative response from the Bot API (ok=false).
type APIError struct {
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return "telegram API error"
	}
	return fmt.Sprintf("telegram API error: %s", e.Description)
}

// Bot mirrors the getMe result fields this backend reads.
type Bot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Chat mirrors the getChat result fields this backend reads.
type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// ChatMember mirrors the getChatMember result fields this backend reads.
type ChatMember struct {
	Status         string `json:"status"`
	CanInviteUsers bool   `json:"can_invite_users"`
}

// BotChannelCheck is the outcome of one capability check: the bot resolved by
// the token, the chat resolved by the identifier, and whether the bot is an
// administrator able to issue invite links there.
type BotChannelCheck struct {
	BotUsername    string
	ChannelTitle   string
	CanInviteLinks bool
}

// CheckBotChannel verifies the token resolves to a bot, the channel exists,
// and the bot holds invite-link rights in it. The token and identifier are
// forwarded to the Bot API and discarded; nothing is cached.
func (c *Client) CheckBotChannel(ctx context.Context, botToken, channelID string) (*BotChannelCheck, error) {
	bot, err := c.getMe(ctx, botToken)
	if err != nil {
		return nil, err
	}

	chat, err := c.getChat(ctx, botToken, channelID)
	if err != nil {
		return nil, err
	}

	member, err := c.getChatMember(ctx, botToken, chat.ID, bot.ID)
	if err != nil {
		return nil, err
	}

	isAdmin := member.Status == "administrator" || member.Status == "creator"

	logger.Debug().
		Str("bot", bot.Username).
		Int64("chat_id", chat.ID).
		Str("member_status", member.Status).
		Bool("can_invite_users", member.CanInviteUsers).
		Msg("Bot channel capability check completed")

	return &BotChannelCheck{
		BotUsername:    bot.Username,
		ChannelTitle:   chat.Title,
		CanInviteLinks: isAdmin && member.CanInviteUsers,
	}, nil
}

func (c *Client) getMe(ctx context.Context, token string) (*Bot, error) {
	var result Bot
	if err := c.call(ctx, token, "getMe", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getChat(ctx context.Context, token, chatID string) (*Chat, error) {
	params := url.Values{"chat_id": {chatID}}
	var result Chat
	if err := c.call(ctx, token, "getChat", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getChatMember(ctx context.Context, token string, chatID, userID int64) (*ChatMember, error) {
	params := url.Values{
		"chat_id": {strconv.FormatInt(chatID, 10)},
		"user_id": {strconv.FormatInt(userID, 10)},
	}
	var result ChatMember
	if err := c.call(ctx, token, "getChatMember", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// call performs one Bot API method call and decodes the result envelope.
func (c *Client) call(ctx context.Context, token, method string, params url.Values, result interface{}) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, token, method)
	if len(params) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var envelope struct {
		Ok          bool            `json:"ok"`
		Description string          `json:"description,omitempty"`
		Result      json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !envelope.Ok {
		return &APIError{Description: envelope.Description}
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to parse result: %w", err)
		}
	}

	return nil
}
