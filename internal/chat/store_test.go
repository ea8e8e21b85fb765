package chat

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, max int) *ConversationStore {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	store := NewConversationStore(db, max)
	require.NoError(t, store.AutoMigrate())
	return store
}

func TestStoreAppendAndHistory(t *testing.T) {
	store := newTestStore(t, 10)
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append("conv-1",
		Message{Role: RoleUser, Content: "hi", Timestamp: ts},
		Message{ID: "reply-1", Role: RoleAssistant, Content: "hello", Timestamp: ts,
			ToolCalls: []ToolCall{{ID: "c1", Name: "github_create_issue", Status: ToolCallSuccess}}},
	))
	require.NoError(t, store.Append("conv-2", Message{Role: RoleUser, Content: "other"}))

	msgs, err := store.History("conv-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.NotEmpty(t, msgs[0].ID)
	assert.Equal(t, "reply-1", msgs[1].ID)
	assert.True(t, ts.Equal(msgs[1].Timestamp))
	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, "github_create_issue", msgs[1].ToolCalls[0].Name)
	assert.Empty(t, msgs[0].ToolCalls)
}

func TestStoreAcceptsRepeatedMessageIDs(t *testing.T) {
	store := newTestStore(t, 10)
	reply := Message{ID: "msg-1", Role: RoleAssistant, Content: "hi"}

	require.NoError(t, store.Append("conv-1", Message{Role: RoleUser, Content: "a"}, reply))
	require.NoError(t, store.Append("conv-1", Message{Role: RoleUser, Content: "b"}, reply))
	require.NoError(t, store.Append("conv-2", reply))

	msgs, err := store.History("conv-1")
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "msg-1", msgs[1].ID)
	assert.Equal(t, "msg-1", msgs[3].ID)

	other, err := store.History("conv-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func TestStoreHistoryUnknownConversation(t *testing.T) {
	store := newTestStore(t, 10)
	msgs, err := store.History("missing")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStoreTrimsOldestMessages(t *testing.T) {
	store := newTestStore(t, 3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Append("conv", Message{Role: RoleUser, Content: fmt.Sprintf("m%d", i)}))
	}

	msgs, err := store.History("conv")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m3", msgs[0].Content)
	assert.Equal(t, "m5", msgs[2].Content)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t, 10)
	require.NoError(t, store.Append("conv", Message{Role: RoleUser, Content: "a"}, Message{Role: RoleAssistant, Content: "b"}))

	n, err := store.Delete("conv")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	msgs, err := store.History("conv")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
