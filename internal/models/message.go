package models

// Message represents a message sent in a group.
// SenderID may point at a member that no longer exists.
type Message struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
	Time     int64  `json:"time"`
}

// MessageView is the API-friendly view of a message with its sender resolved.
type MessageView struct {
	Message
	SenderName string `json:"sender_name"`
}
