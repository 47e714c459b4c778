package store

import (
	"context"
	"testing"

	"MealGo-Backend/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, table Table, op, result string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, operations.WithLabelValues(string(table), op, result).Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveCountsMissesAsNotFound(t *testing.T) {
	f, mock := newMockFacade(t)
	ctx := context.Background()

	notFound := counterValue(t, TableTips, "get", "not_found")
	failed := counterValue(t, TableTips, "get", "error")

	mock.ExpectQuery(`SELECT \* FROM "tips" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err := Get[entities.Tip](ctx, f, ColID, uuid.New())
	require.True(t, IsNotFound(err))

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	_, err = f.ActiveSubscriptionForUser(ctx, uuid.New())
	require.True(t, IsNotFound(err))

	assert.Equal(t, notFound+1, counterValue(t, TableTips, "get", "not_found"))
	assert.Equal(t, failed, counterValue(t, TableTips, "get", "error"))
	assert.Positive(t, counterValue(t, TableUserSubscriptions, "active_subscription", "not_found"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObserveAcceptsTranslatedErrors(t *testing.T) {
	before := counterValue(t, TableUsers, "lookup", "not_found")
	observe(TableUsers, "lookup", ErrNotFound)
	assert.Equal(t, before+1, counterValue(t, TableUsers, "lookup", "not_found"))
}
