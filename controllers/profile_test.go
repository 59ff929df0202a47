package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	f := setupFixture(t)
	f.signIn(t)
	f.backend.respond("GET /auth/profile", http.StatusOK, `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","memberSince":"2023-07-04T09:00:00"}`)

	view, err := f.ctrl.Profile(context.Background(), ui.NewRecorder(), f.store)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", view.Name)
	require.Equal(t, "7/4/2023", view.MemberSince)
	require.True(t, view.TokenExpires.IsZero())
}

func TestProfile_Failure(t *testing.T) {
	f := setupFixture(t)
	f.signIn(t)
	page := ui.NewRecorder()

	_, err := f.ctrl.Profile(context.Background(), page, f.store)
	require.Error(t, err)
	require.Equal(t, controllers.MsgProfileFailed, page.Items()[0].Message)
}
