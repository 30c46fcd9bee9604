package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

func setupMessages(t *testing.T) (*MessageService, *memProfileRepo) {
	t.Helper()
	profileRepo := &memProfileRepo{}
	svc := NewMessageService(&memMessageRepo{}, profileRepo, realtime.NewBroker(), testLogger())
	return svc, profileRepo
}

func TestMessageSend(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx := context.Background()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")

	msg, err := svc.Send(ctx, student.ID, teacher.ID, "hello")
	require.NoError(t, err)

	assert.Equal(t, student.ID, msg.SenderID)
	assert.Equal(t, teacher.ID, msg.ReceiverID)
	assert.Equal(t, [2]string{student.ID, teacher.ID}, msg.Participants)
	assert.False(t, msg.CreatedAt.IsZero())

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := svc.Send(ctx, student.ID, teacher.ID, "   ")
		assert.True(t, IsValidation(err))
	})

	t.Run("unresolvable receiver rejected", func(t *testing.T) {
		_, err := svc.Send(ctx, student.ID, "missing", "hello?")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationFiltersToExactPair(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx := context.Background()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")
	other := newTeacher(t, profileRepo, "t2", "t2@college.edu", "History")

	_, err := svc.Send(ctx, student.ID, teacher.ID, "hi teacher")
	require.NoError(t, err)
	_, err = svc.Send(ctx, teacher.ID, student.ID, "hi student")
	require.NoError(t, err)
	// Noise the backing query returns but the conversation must not.
	_, err = svc.Send(ctx, student.ID, other.ID, "unrelated")
	require.NoError(t, err)
	_, err = svc.Send(ctx, other.ID, teacher.ID, "also unrelated")
	require.NoError(t, err)

	msgs, err := svc.Conversation(ctx, student.ID, teacher.ID)
	require.NoError(t, err)

	require.Len(t, msgs, 2)
	for _, msg := range msgs {
		assert.True(t, msg.Between(student.ID, teacher.ID))
	}
	assert.Equal(t, "hi teacher", msgs[0].Content)
	assert.Equal(t, "hi student", msgs[1].Content)
}

func TestInboxListsOnlyReceivedMessages(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx := context.Background()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")
	other := newStudent(t, profileRepo, "s2", "s2@college.edu")

	_, err := svc.Send(ctx, student.ID, teacher.ID, "question about homework")
	require.NoError(t, err)
	_, err = svc.Send(ctx, other.ID, teacher.ID, "office hours?")
	require.NoError(t, err)
	// Sent by the teacher, so not part of their inbox.
	_, err = svc.Send(ctx, teacher.ID, student.ID, "see you tomorrow")
	require.NoError(t, err)

	inbox, err := svc.Inbox(ctx, teacher.ID)
	require.NoError(t, err)

	require.Len(t, inbox, 2)
	senders := []string{inbox[0].SenderID, inbox[1].SenderID}
	assert.ElementsMatch(t, []string{student.ID, other.ID}, senders)
	for _, msg := range inbox {
		assert.Equal(t, teacher.ID, msg.ReceiverID)
	}
}

func TestInboxWatch(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")

	sub := svc.WatchInbox(ctx, teacher.ID)
	defer sub.Close()

	assert.Empty(t, waitSnapshot(t, sub))

	_, err := svc.Send(ctx, student.ID, teacher.ID, "hello")
	require.NoError(t, err)

	snapshot := waitSnapshot(t, sub)
	require.Len(t, snapshot, 1)
	assert.Equal(t, student.ID, snapshot[0].SenderID)
}

func TestConversationOrderedByCreation(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx := context.Background()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Send(ctx, student.ID, teacher.ID, content)
		require.NoError(t, err)
	}

	msgs, err := svc.Conversation(ctx, student.ID, teacher.ID)
	require.NoError(t, err)

	require.Len(t, msgs, 3)
	assert.True(t, sort.SliceIsSorted(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	}))
}

func TestMessageWatch(t *testing.T) {
	svc, profileRepo := setupMessages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	student := newStudent(t, profileRepo, "s1", "s1@college.edu")
	teacher := newTeacher(t, profileRepo, "t1", "t1@college.edu", "Math")
	other := newTeacher(t, profileRepo, "t2", "t2@college.edu", "History")

	sub := svc.Watch(ctx, student.ID, teacher.ID)
	defer sub.Close()

	assert.Empty(t, waitSnapshot(t, sub))

	_, err := svc.Send(ctx, student.ID, other.ID, "unrelated")
	require.NoError(t, err)
	_, err = svc.Send(ctx, student.ID, teacher.ID, "hello")
	require.NoError(t, err)

	// Snapshots may coalesce; wait until the conversation message shows up
	// and verify nothing outside the pair ever does.
	for {
		snapshot := waitSnapshot(t, sub)
		for _, msg := range snapshot {
			assert.True(t, msg.Between(student.ID, teacher.ID))
		}
		if len(snapshot) == 1 {
			assert.Equal(t, "hello", snapshot[0].Content)
			break
		}
	}
}
