package eventbus

import "time"

// Topic represents an event topic.
type Topic string

const (
	TopicInvocationStart Topic = "invocation_start"
	TopicInvocationDone  Topic = "invocation_done"
	TopicLLMRequest      Topic = "llm_request"
	TopicLLMResponse     Topic = "llm_response"
	TopicToolCall        Topic = "tool_call"
	TopicToolResult      Topic = "tool_result"
	TopicError           Topic = "error"
)

// Event is a message passed through the event bus.
type Event struct {
	Topic     Topic
	Payload   any
	Timestamp time.Time
}

// Handler processes an event.
type Handler func(Event)
