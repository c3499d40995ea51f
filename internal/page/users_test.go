package page

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/model"
)

func TestUsersLoadRendersOneCardPerUserInOrder(t *testing.T) {
	src := &fakeSource{users: []model.User{
		{ID: 3, Name: "Clementine Bauch"},
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	}}
	view := &fakeUsersView{}

	err := NewUsers(src, view, quietLogger()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"loading", "success"}, view.branches)
	assert.Equal(t, LoadingUsers, view.loading)
	if diff := cmp.Diff(src.users, view.cards); diff != "" {
		t.Fatalf("cards mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, src.calls)
}

func TestUsersLoadFailures(t *testing.T) {
	for name, cause := range map[string]error{
		"http 500": &api.StatusError{Code: 500},
		"network":  errNetwork,
	} {
		t.Run(name, func(t *testing.T) {
			view := &fakeUsersView{}
			err := NewUsers(&fakeSource{err: cause}, view, quietLogger()).Load(context.Background())

			require.ErrorIs(t, err, cause)
			assert.Equal(t, "error", view.last())
			assert.NotContains(t, view.branches, "success")
			assert.Equal(t, FailedUsers, view.message)
			assert.Equal(t, cause, view.err)
			assert.Nil(t, view.retry)
		})
	}
}
