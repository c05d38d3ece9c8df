package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeMessage(t *testing.T) {
	buf, err := composeMessage("from@example.com", "to@example.com", "your code: ABC", "Password reset")
	require.Nil(t, err)
	text := buf.String()
	require.True(t, strings.Contains(text, "From: from@example.com"))
	require.True(t, strings.Contains(text, "To: to@example.com"))
	require.True(t, strings.Contains(text, "Subject: Job Tracker - Password reset"))
	require.True(t, strings.Contains(text, "your code: ABC"))
}

func TestSendEMailNotConfigured(t *testing.T) {
	require.Nil(t, Connect("", "", "", "", false))
	require.False(t, Instance.IsConfigured())
	require.Nil(t, Instance.SendEMail("from@example.com", "to@example.com", "text", "subject"))
}
