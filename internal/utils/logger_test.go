package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestServicePrefixHook(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.AddHook(&servicePrefixHook{service: "property-service"})

	l.Info("listening")

	require.Contains(t, buf.String(), "[property-service] listening")
}
