package email

import (
	"testing"

	"activitysignup/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ParticipantEmailData{
		Email:        "emma@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	}

	subject, htmlBody, textBody, err := r.Render("signup_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "You are signed up for Chess Club", subject)
	assert.Contains(t, htmlBody, "<strong>Chess Club</strong>")
	assert.Contains(t, htmlBody, "Fridays, 3:30 PM - 5:00 PM")
	assert.Contains(t, textBody, "emma@mergington.edu")

	subject, _, textBody, err = r.Render("unregister_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "You have left Chess Club", subject)
	assert.Contains(t, textBody, "unregistered from Chess Club")
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ParticipantEmailData{Email: "a@example.com", ActivityName: "<script>x</script>"}

	_, htmlBody, textBody, err := r.Render("signup_confirmation", data)
	require.NoError(t, err)
	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, textBody, "<script>x</script>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("welcome", &domain.ParticipantEmailData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
