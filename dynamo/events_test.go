package dynamo

import (
	"context"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/divine-encounter/event-registration/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedEvent() events.Event {
	event := events.DivineEncounter2026(uuid.New())
	event.StartTime = event.StartTime.UTC()
	event.EndTime = event.EndTime.UTC()
	return event
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("successfully create an event and read it back", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()

		require.NoError(t, db.CreateEvent(ctx, event))

		got, err := db.GetEvent(ctx, event.ID)
		require.NoError(t, err)

		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, 1, got.Version)
		assert.Equal(t, events.DivineEncounterName, got.Name)
		assert.Equal(t, events.DivineEncounterTagline, got.Tagline)
		assert.Equal(t, event.EventLocation, got.EventLocation)
		assert.True(t, event.StartTime.Equal(got.StartTime))
		assert.True(t, event.EndTime.Equal(got.EndTime))
		require.NotNil(t, got.Price)
		assert.Equal(t, int64(500000), got.Price.Amount())
		assert.Equal(t, money.NGN, got.Price.Currency().Code)
		assert.Zero(t, got.TotalRegistrations)
	})

	t.Run("fail to create an event that already exists", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()

		require.NoError(t, db.CreateEvent(ctx, event))

		err := db.CreateEvent(ctx, event)
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_EVENT_ALREADY_EXISTS, eventError.Reason)
	})

	t.Run("price is stored as minor units and currency code", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()
		require.NoError(t, db.CreateEvent(ctx, event))

		resp, err := dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(tableName),
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: eventPK(event.ID)},
				"SK": &types.AttributeValueMemberS{Value: eventSK(event.ID)},
			},
		})
		require.NoError(t, err)

		var raw eventDynamo
		require.NoError(t, attributevalue.UnmarshalMap(resp.Item, &raw))
		assert.Equal(t, int64(500000), raw.PriceAmount)
		assert.Equal(t, "NGN", raw.PriceCurrency)
	})
}

func TestGetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("fail to get an event that does not exist", func(t *testing.T) {
		resetTable(ctx)

		_, err := db.GetEvent(ctx, uuid.New())
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_EVENT_DOES_NOT_EXIST, eventError.Reason)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("successfully update the details and keep the counters", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()
		require.NoError(t, db.CreateEvent(ctx, event))
		require.NoError(t, db.CreateRegistration(ctx, newPendingRegistration(event.ID)))

		// Counters on this copy are stale and must not be written back.
		event.Version++
		event.Tagline = "Encounter the Divine"
		require.NoError(t, db.UpdateEvent(ctx, event))

		got, err := db.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
		assert.Equal(t, "Encounter the Divine", got.Tagline)
		assert.Equal(t, 1, got.TotalRegistrations)
		assert.True(t, event.StartTime.Equal(got.StartTime))
		require.NotNil(t, got.Price)
		assert.Equal(t, event.Price.Amount(), got.Price.Amount())
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()
		require.NoError(t, db.CreateEvent(ctx, event))

		event.Version = 5
		err := db.UpdateEvent(ctx, event)
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_VERSION_CONFLICT, eventError.Reason)
	})

	t.Run("fail to update an event that does not exist", func(t *testing.T) {
		resetTable(ctx)
		event := storedEvent()
		event.Version = 2

		err := db.UpdateEvent(ctx, event)
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_EVENT_DOES_NOT_EXIST, eventError.Reason)
	})
}

func TestEnsureEventAgainstDynamo(t *testing.T) {
	ctx := context.Background()
	resetTable(ctx)

	event := storedEvent()

	first, err := events.EnsureEvent(ctx, db, event)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	require.NoError(t, db.CreateRegistration(ctx, newPendingRegistration(first.ID)))

	second, err := events.EnsureEvent(ctx, db, event)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalRegistrations)
	assert.Equal(t, 1, second.Version)
}

func TestEnsureEventRefreshesDetails(t *testing.T) {
	ctx := context.Background()
	resetTable(ctx)

	event := storedEvent()
	_, err := events.EnsureEvent(ctx, db, event)
	require.NoError(t, err)

	moved := event
	moved.EventLocation.Name = "Eko Convention Centre"

	refreshed, err := events.EnsureEvent(ctx, db, moved)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.Version)

	got, err := db.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eko Convention Centre", got.EventLocation.Name)
	assert.Equal(t, 2, got.Version)
}
