package chat

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultMaxMessages bounds how many messages are kept per conversation.
const DefaultMaxMessages = 100

// ToolCallList is a GORM type for tool calls stored as JSON text.
type ToolCallList []ToolCall

// Scan implements the sql.Scanner interface for ToolCallList.
func (l *ToolCallList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("unsupported type for ToolCallList: %T", value)
	}
	return json.Unmarshal(b, l)
}

// Value implements the driver.Valuer interface for ToolCallList.
func (l ToolCallList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MessageRecord is one persisted chat message. RowID is minted by the store;
// MessageID is whatever id the message carried and need not be unique, since
// agents may reuse reply ids.
type MessageRecord struct {
	RowID          string       `gorm:"primaryKey;column:row_id;type:varchar(36)"`
	MessageID      string       `gorm:"column:message_id;not null"`
	ConversationID string       `gorm:"column:conversation_id;index:idx_chat_conv,priority:1;not null"`
	Position       int64        `gorm:"column:position;index:idx_chat_conv,priority:2;not null"`
	Role           string       `gorm:"column:role;not null"`
	Content        string       `gorm:"column:content;type:text"`
	ToolCalls      ToolCallList `gorm:"column:tool_calls;type:text"`
	Error          string       `gorm:"column:error"`
	Timestamp      time.Time    `gorm:"column:timestamp;not null"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the GORM table name.
func (MessageRecord) TableName() string { return "chat_messages" }

func (r MessageRecord) toMessage() Message {
	return Message{
		ID:             r.MessageID,
		ConversationID: r.ConversationID,
		Role:           Role(r.Role),
		Content:        r.Content,
		Timestamp:      r.Timestamp.UTC(),
		ToolCalls:      r.ToolCalls,
		Error:          r.Error,
	}
}

// OpenDB opens the SQLite database backing the conversation store.
// An empty path or ":memory:" keeps everything in process memory.
func OpenDB(path string) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open chat database: %w", err)
	}
	if path == ":memory:" {
		// every connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open chat database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// ConversationStore keeps bounded per-conversation message history.
type ConversationStore struct {
	db          *gorm.DB
	maxMessages int
}

// NewConversationStore creates a new ConversationStore.
func NewConversationStore(db *gorm.DB, maxMessages int) *ConversationStore {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &ConversationStore{db: db, maxMessages: maxMessages}
}

// AutoMigrate creates or updates the chat_messages table.
func (s *ConversationStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&MessageRecord{}); err != nil {
		return fmt.Errorf("migrate chat messages: %w", err)
	}
	return nil
}

// Append stores messages at the end of a conversation and drops the oldest
// ones beyond the configured limit. Messages without an id get one. Every
// row gets a fresh key, so message ids may repeat across or within
// conversations.
func (s *ConversationStore) Append(conversationID string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&MessageRecord{}).
			Where("conversation_id = ?", conversationID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("read last position: %w", err)
		}

		records := make([]MessageRecord, 0, len(msgs))
		for _, m := range msgs {
			last++
			id := m.ID
			if id == "" {
				id = uuid.NewString()
			}
			ts := m.Timestamp
			if ts.IsZero() {
				ts = time.Now()
			}
			records = append(records, MessageRecord{
				RowID:          uuid.NewString(),
				MessageID:      id,
				ConversationID: conversationID,
				Position:       last,
				Role:           string(m.Role),
				Content:        m.Content,
				ToolCalls:      m.ToolCalls,
				Error:          m.Error,
				Timestamp:      ts.UTC(),
			})
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert messages: %w", err)
		}

		cutoff := last - int64(s.maxMessages)
		if cutoff > 0 {
			if err := tx.Where("conversation_id = ? AND position <= ?", conversationID, cutoff).
				Delete(&MessageRecord{}).Error; err != nil {
				return fmt.Errorf("trim conversation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append chat messages: %w", err)
	}
	return nil
}

// History returns the stored messages of a conversation, oldest first.
func (s *ConversationStore) History(conversationID string) ([]Message, error) {
	var records []MessageRecord
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("position ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	out := make([]Message, 0, len(records))
	for _, r := range records {
		out = append(out, r.toMessage())
	}
	return out, nil
}

// Delete removes a conversation. Returns the number of deleted messages.
func (s *ConversationStore) Delete(conversationID string) (int64, error) {
	result := s.db.Where("conversation_id = ?", conversationID).Delete(&MessageRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete conversation: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOlderThan removes messages stamped before cutoff. Returns the number
// of deleted messages.
func (s *ConversationStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := s.db.Where("timestamp < ?", cutoff.UTC()).Delete(&MessageRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete old chat messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}
