package main

import (
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStores_Memory(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard

	st, err := openStores(config.DatabaseConfig{Driver: "memory"}, log)
	require.NoError(t, err)
	defer st.close()

	id, err := st.users.Create(context.Background(), &domain.User{Username: "alice"})
	require.NoError(t, err)
	u, err := st.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := openStores(config.DatabaseConfig{Driver: "cassandra"}, logrus.New())
	assert.Error(t, err)
}
