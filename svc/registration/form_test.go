package registration_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qauto/garage/svc/registration"
)

var validValues = map[registration.FieldName]string{
	registration.Name:           strings.Repeat("Aa", 10),
	registration.LastName:       strings.Repeat("Bb", 10),
	registration.Email:          "rina.n.qa+1@gmail.com",
	registration.Password:       "ValidPa1",
	registration.RepeatPassword: "ValidPa1",
}

func fill(t *testing.T, form *registration.Form, values map[registration.FieldName]string) {
	t.Helper()
	for _, name := range registration.Fields() {
		require.NoError(t, form.SetValue(name, values[name]))
	}
}

func openForm(t *testing.T) *registration.Form {
	t.Helper()
	return registration.NewOrchestrator(&MockRegistry{}).Open()
}

func TestForm_PristineState(t *testing.T) {
	t.Parallel()

	form := openForm(t)

	want := registration.FormState{
		Fields: []registration.FieldState{
			{Name: registration.Name},
			{Name: registration.LastName},
			{Name: registration.Email},
			{Name: registration.Password},
			{Name: registration.RepeatPassword},
		},
	}
	if diff := cmp.Diff(want, form.State()); diff != "" {
		t.Fatalf("pristine state mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, form.IsSubmittable())
	assert.Empty(t, form.VisibleErrors())
}

func TestForm_UntouchedFieldsHideErrors(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	fill(t, form, map[registration.FieldName]string{
		registration.Name:     "A",
		registration.Email:    "invalidemail",
		registration.Password: "weak",
	})

	for _, f := range form.State().Fields {
		assert.False(t, f.Touched, f.Name)
		assert.Empty(t, f.Errors, f.Name)
		assert.False(t, f.IsInvalid, f.Name)
	}
	assert.False(t, form.IsSubmittable())
}

func TestForm_SubmitGate(t *testing.T) {
	t.Parallel()

	for _, field := range registration.Fields() {
		t.Run("clearing "+field.String(), func(t *testing.T) {
			t.Parallel()
			form := openForm(t)
			fill(t, form, validValues)
			require.True(t, form.IsSubmittable())
			require.True(t, form.State().Submittable)

			require.NoError(t, form.SetValue(field, ""))
			assert.False(t, form.IsSubmittable())
			assert.Empty(t, form.VisibleErrors(), "gate must not reveal errors")
		})
	}
}

func TestForm_BlurTrimsNames(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	require.NoError(t, form.SetValue(registration.Name, "  Kate  "))

	state, _ := form.State().Field(registration.Name)
	assert.Equal(t, "  Kate  ", state.RawValue)
	assert.Equal(t, "Kate", state.NormalizedValue)

	require.NoError(t, form.Blur(registration.Name))
	state, _ = form.State().Field(registration.Name)
	assert.Equal(t, "Kate", state.RawValue)
	assert.Empty(t, state.Errors)

	require.NoError(t, form.SetValue(registration.LastName, "  Lastname  "))
	require.NoError(t, form.Blur(registration.LastName))
	state, _ = form.State().Field(registration.LastName)
	assert.Equal(t, "Lastname", state.RawValue)

	require.NoError(t, form.SetValue(registration.Password, " Password12 "))
	require.NoError(t, form.Blur(registration.Password))
	state, _ = form.State().Field(registration.Password)
	assert.Equal(t, " Password12 ", state.RawValue, "passwords are not trimmed")
}

func TestForm_CorrectionClearsErrorsWithoutBlur(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	require.NoError(t, form.SetValue(registration.Name, "A"))
	require.NoError(t, form.Blur(registration.Name))

	state, _ := form.State().Field(registration.Name)
	require.True(t, state.IsInvalid)
	assert.Equal(t, []string{"Name has to be from 2 to 20 characters long"}, state.Errors)

	require.NoError(t, form.SetValue(registration.Name, "Kate"))
	state, _ = form.State().Field(registration.Name)
	assert.False(t, state.IsInvalid)
	assert.Empty(t, state.Errors)
}

func TestForm_EvaluationIsIdempotent(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	require.NoError(t, form.SetValue(registration.Name, "A"+strings.Repeat(" ", 19)+"y"))
	require.NoError(t, form.Blur(registration.Name))

	first := form.State()
	second := form.State()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-evaluation changed state:\n%s", diff)
	}
	assert.Equal(t,
		[]string{"Name is invalid", "Name has to be from 2 to 20 characters long"},
		form.VisibleErrors()[registration.Name],
	)
}

func TestForm_PasswordChangeReevaluatesRepeat(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	require.NoError(t, form.SetValue(registration.Password, "Password12"))
	require.NoError(t, form.SetValue(registration.RepeatPassword, "Password13"))
	require.NoError(t, form.Blur(registration.RepeatPassword))
	assert.Equal(t, []string{"Passwords do not match"}, form.VisibleErrors()[registration.RepeatPassword])

	require.NoError(t, form.SetValue(registration.Password, "Password13"))
	assert.NotContains(t, form.VisibleErrors(), registration.RepeatPassword)
}

func TestForm_TouchAllRevealsLatentErrors(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	form.TouchAll()

	assert.Equal(t, map[registration.FieldName][]string{
		registration.Name:           {"Name required"},
		registration.LastName:       {"Last name required"},
		registration.Email:          {"Email required"},
		registration.Password:       {"Password required"},
		registration.RepeatPassword: {"Re-enter password required"},
	}, form.VisibleErrors())
}

func TestForm_UnknownField(t *testing.T) {
	t.Parallel()

	form := openForm(t)
	assert.ErrorIs(t, form.SetValue("nickname", "x"), registration.ErrUnknownField)
	assert.ErrorIs(t, form.Blur("nickname"), registration.ErrUnknownField)
	assert.False(t, registration.FieldName("nickname").Valid())
	assert.True(t, registration.Email.Valid())
	assert.Equal(t, "Re-enter password", registration.RepeatPassword.Label())
}
