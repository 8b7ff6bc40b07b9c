package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/bowale01/spirited-travels-africa/models"
	"github.com/bowale01/spirited-travels-africa/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrBlankMessage is returned when a send carries empty or whitespace-only
// content. Nothing is written in that case.
var ErrBlankMessage = errors.New("message content is blank")

// Notifier pushes stored messages to live conversation subscribers.
type Notifier interface {
	Broadcast(conversationKey string, message models.Message)
}

// ChatService handles message threads between two travelers
type ChatService struct {
	Dynamo   *DynamoService
	Notifier Notifier
}

// GetConversation fetches the messages exchanged between the caller and
// otherUserID in either direction, sorted ascending by creation time.
func (cs *ChatService) GetConversation(ctx context.Context, identity Identity, otherUserID string) ([]models.Message, error) {
	if identity.UserID == "" {
		return nil, ErrForbidden
	}

	filter := "(senderId = :me AND receiverId = :them) OR (senderId = :them AND receiverId = :me)"
	values := map[string]types.AttributeValue{
		":me":   &types.AttributeValueMemberS{Value: identity.UserID},
		":them": &types.AttributeValueMemberS{Value: otherUserID},
	}

	items, err := cs.Dynamo.ScanItems(ctx, models.MessagesTable, filter, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// SendMessage stores a message from the caller. The message id may be
// supplied by the client; a retried send with the same id resolves to the
// already stored record instead of a duplicate.
func (cs *ChatService) SendMessage(ctx context.Context, identity Identity, message models.Message) (*models.Message, error) {
	if !Can(identity, ActionCreate, EntityMessage, identity.UserID) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(message.Content) == "" {
		return nil, ErrBlankMessage
	}
	if message.ReceiverID == "" {
		return nil, fmt.Errorf("%w: message receiver is required", ErrInvalidInput)
	}
	if message.MessageType == "" {
		message.MessageType = models.MessageTypeText
	}
	if !models.ValidMessageType(message.MessageType) {
		return nil, fmt.Errorf("%w: invalid message type %q", ErrInvalidInput, message.MessageType)
	}

	message.SenderID = identity.UserID
	message.Content = strings.TrimSpace(message.Content)
	message.IsRead = false
	message.ReadAt = ""
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	if message.MessageID == "" {
		message.MessageID = uuid.NewString()
	}

	err := cs.Dynamo.PutItemIfAbsent(ctx, models.MessagesTable, "messageId", message)
	if errors.Is(err, ErrConditionFailed) {
		// Duplicate send of the same client-generated id: keep the
		// first write authoritative.
		log.Printf("Ignoring duplicate send of message %s", message.MessageID)
		return &message, nil
	}
	if err != nil {
		return nil, err
	}

	if cs.Notifier != nil {
		cs.Notifier.Broadcast(ConversationKey(message.SenderID, message.ReceiverID), message)
	}
	return &message, nil
}

// MarkConversationRead marks as read every message the caller received
// from otherUserID.
func (cs *ChatService) MarkConversationRead(ctx context.Context, identity Identity, otherUserID string) error {
	if identity.UserID == "" {
		return ErrForbidden
	}

	filter := "senderId = :them AND receiverId = :me AND isRead = :unread"
	values := map[string]types.AttributeValue{
		":me":     &types.AttributeValueMemberS{Value: identity.UserID},
		":them":   &types.AttributeValueMemberS{Value: otherUserID},
		":unread": &types.AttributeValueMemberBOOL{Value: false},
	}

	items, err := cs.Dynamo.ScanItems(ctx, models.MessagesTable, filter, values, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch unread messages: %w", err)
	}

	readAt := time.Now().UTC().Format(time.RFC3339)
	for _, item := range items {
		messageID := utils.ExtractString(item, "messageId")
		if messageID == "" {
			continue
		}

		updateExpression := "SET isRead = :read, readAt = :readAt"
		_, err := cs.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression,
			map[string]types.AttributeValue{
				"messageId": &types.AttributeValueMemberS{Value: messageID},
			},
			map[string]types.AttributeValue{
				":read":   &types.AttributeValueMemberBOOL{Value: true},
				":readAt": &types.AttributeValueMemberS{Value: readAt},
			},
			nil,
		)
		if err != nil {
			log.Printf("Failed to mark message %s as read: %v", messageID, err)
		}
	}
	return nil
}

// ConversationKey names the broadcast channel for a sender/receiver pair.
// Both directions map to the same key.
func ConversationKey(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}
