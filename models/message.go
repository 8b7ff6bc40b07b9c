package models

// Message is a directional, timestamped message between two travelers.
// MessageID is generated by the sender so that a retried send resolves to
// the same record.
type Message struct {
	MessageID     string `dynamodbav:"messageId" json:"messageId"`
	SenderID      string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID    string `dynamodbav:"receiverId" json:"receiverId"`
	Content       string `dynamodbav:"content" json:"content"`
	MessageType   string `dynamodbav:"messageType" json:"messageType"`
	IsRead        bool   `dynamodbav:"isRead" json:"isRead"`
	ReadAt        string `dynamodbav:"readAt,omitempty" json:"readAt,omitempty"`
	TripID        string `dynamodbav:"tripId,omitempty" json:"tripId,omitempty"`
	AttachmentURL string `dynamodbav:"attachmentUrl,omitempty" json:"attachmentUrl,omitempty"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// MessagesTable is the DynamoDB table name for messages
const MessagesTable = "Messages"
