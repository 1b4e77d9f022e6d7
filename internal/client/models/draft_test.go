package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftFromUser_CopiesEverything(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(leanne), &u))

	d, err := DraftFromUser(u)
	require.NoError(t, err)

	assert.Equal(t, "1", d.ID())
	assert.Equal(t, "Leanne Graham", d.Get("name"))
	assert.Equal(t, "Bret", d.Get("username"))
	assert.Equal(t, `{"city":"Gwenborough"}`, d.Get("address"))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, leanne, string(b), "numeric id must stay a number")
}

func TestDraft_SetDoesNotTouchSource(t *testing.T) {
	u := User{ID: NumericID(3), Name: "Ann"}

	d, err := DraftFromUser(u)
	require.NoError(t, err)
	d.Set("name", "Anna")

	assert.Equal(t, "Anna", d.Get("name"))
	assert.Equal(t, "Ann", u.Name)
}

func TestDraft_CloneAndKeys(t *testing.T) {
	d := NewDraft()
	d.Set("phone", "1")
	d.Set("email", "e")

	c := d.Clone()
	c.Set("phone", "2")

	assert.Equal(t, "1", d.Get("phone"))
	assert.Equal(t, []string{"email", "phone"}, d.Keys())
	assert.Nil(t, Draft(nil).Clone())
	assert.Empty(t, d.ID())
	assert.Empty(t, d.Get("missing"))
}

func TestDraft_Validate(t *testing.T) {
	d := NewDraft()
	err := d.Validate(RequiredUserFields...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequired))
	assert.Equal(t, "required field missing: email, name, phone", err.Error())

	d.Set("name", "Ann")
	d.Set("email", "")
	d.Set("phone", "555")
	err = d.Validate(RequiredUserFields...)
	require.Error(t, err)
	assert.Equal(t, "required field missing: email", err.Error())

	d.Set("email", "ann@example.org")
	assert.NoError(t, d.Validate(RequiredUserFields...))
	assert.NoError(t, NewDraft().Validate())
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{Username: "utkarsh", Password: "12345"}.Validate())

	err := Credentials{Username: "utkarsh"}.Validate()
	require.ErrorIs(t, err, ErrRequired)
	assert.Equal(t, "required field missing: password", err.Error())

	err = Credentials{}.Validate()
	assert.Equal(t, "required field missing: password, username", err.Error())
}
