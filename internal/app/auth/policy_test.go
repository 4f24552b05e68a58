package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

type ownedRecord struct {
	owner int64
}

func (r ownedRecord) OwnerID() int64 { return r.owner }

func TestCallerAuthenticated(t *testing.T) {
	assert.False(t, Anonymous.Authenticated())
	assert.False(t, Caller{}.Authenticated())
	assert.True(t, Caller{ID: 1}.Authenticated())
}

func TestScopeEvents(t *testing.T) {
	assert.Equal(t, EventScope{ViewerID: 0}, ScopeEvents(Anonymous))
	assert.Equal(t, EventScope{ViewerID: 42}, ScopeEvents(Caller{ID: 42}))
}

func TestAuthorizeWrite(t *testing.T) {
	owner := Caller{ID: 1}
	other := Caller{ID: 2}
	record := ownedRecord{owner: 1}

	t.Run("reads are always allowed", func(t *testing.T) {
		assert.NoError(t, AuthorizeWrite(Anonymous, record, ActionRead))
		assert.NoError(t, AuthorizeWrite(other, record, ActionRead))
	})

	t.Run("writes require identity", func(t *testing.T) {
		for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
			err := AuthorizeWrite(Anonymous, record, action)
			assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
		}
	})

	t.Run("any authenticated caller may create", func(t *testing.T) {
		assert.NoError(t, AuthorizeWrite(other, nil, ActionCreate))
	})

	t.Run("update and delete require ownership", func(t *testing.T) {
		assert.NoError(t, AuthorizeWrite(owner, record, ActionUpdate))
		assert.NoError(t, AuthorizeWrite(owner, record, ActionDelete))

		assert.ErrorIs(t, AuthorizeWrite(other, record, ActionUpdate), apperrors.ErrNotOwner)
		assert.ErrorIs(t, AuthorizeWrite(other, record, ActionDelete), apperrors.ErrNotOwner)
	})

	t.Run("missing record denies ownership", func(t *testing.T) {
		assert.ErrorIs(t, AuthorizeWrite(owner, nil, ActionUpdate), apperrors.ErrNotOwner)
	})

	t.Run("denial reasons stay distinct", func(t *testing.T) {
		authErr := AuthorizeWrite(Anonymous, record, ActionUpdate)
		ownerErr := AuthorizeWrite(other, record, ActionUpdate)
		assert.NotErrorIs(t, authErr, apperrors.ErrNotOwner)
		assert.NotErrorIs(t, ownerErr, apperrors.ErrNotAuthenticated)
	})
}
