package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostDefaultsScheduleDateToToday(t *testing.T) {
	post := NewPost(uuid.New(), "hello", "#a", time.Time{}, "role", "industry", "interests")

	assert.Equal(t, Today(), post.ScheduleDate)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
}

func TestValidatedPostRejectsBlankContent(t *testing.T) {
	owner := uuid.New()

	_, err := NewValidatedPost(NewPost(owner, "", "#a", time.Time{}, "", "", ""))
	assert.Error(t, err)

	_, err = NewValidatedPost(NewPost(owner, "   \n\t", "#a", time.Time{}, "", "", ""))
	assert.Error(t, err)

	vp, err := NewValidatedPost(NewPost(owner, "real content", "#a", time.Time{}, "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, "real content", vp.GetPost().Content)
}

func TestValidatedPostRequiresOwner(t *testing.T) {
	_, err := NewValidatedPost(NewPost(uuid.Nil, "content", "", time.Time{}, "", "", ""))
	assert.Error(t, err)
}

func TestDraftEffectiveScheduleDate(t *testing.T) {
	draft := &Draft{Id: uuid.New(), UserID: uuid.New(), Content: "x"}
	assert.Equal(t, Today(), draft.EffectiveScheduleDate())

	fixed := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	draft.ScheduleDate = fixed
	assert.Equal(t, fixed, draft.EffectiveScheduleDate())
}

func TestValidatedDraftRejectsBlankContent(t *testing.T) {
	_, err := NewValidatedDraft(NewDraft(uuid.New(), "  ", "", time.Time{}))
	assert.Error(t, err)
}
