package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/divine-encounter/event-registration/events"
	"github.com/google/uuid"
)

var _ events.Repository = &DB{}

type eventDynamo struct {
	PK            string
	SK            string
	ID            string
	Version       int
	Name          string
	Tagline       string
	EventLocation events.Location
	StartTime     time.Time
	EndTime       time.Time
	PriceAmount   int64
	PriceCurrency string

	TotalRegistrations int
	PaidRegistrations  int
	InPersonAttendees  int
}

const (
	eventEntityName = "EVENT"
)

func eventPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func eventSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func eventKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: eventPK(id)},
		"SK": &types.AttributeValueMemberS{Value: eventSK(id)},
	}
}

func newEventDynamo(event events.Event) eventDynamo {
	item := eventDynamo{
		PK:                 eventPK(event.ID),
		SK:                 eventSK(event.ID),
		ID:                 event.ID.String(),
		Version:            event.Version,
		Name:               event.Name,
		Tagline:            event.Tagline,
		EventLocation:      event.EventLocation,
		StartTime:          event.StartTime,
		EndTime:            event.EndTime,
		TotalRegistrations: event.TotalRegistrations,
		PaidRegistrations:  event.PaidRegistrations,
		InPersonAttendees:  event.InPersonAttendees,
	}
	if event.Price != nil {
		item.PriceAmount = event.Price.Amount()
		item.PriceCurrency = event.Price.Currency().Code
	}
	return item
}

func eventFromEventDynamo(event eventDynamo) events.Event {
	var price *money.Money
	if event.PriceCurrency != "" {
		price = money.New(event.PriceAmount, event.PriceCurrency)
	}

	return events.Event{
		ID:                 uuid.MustParse(event.ID),
		Version:            event.Version,
		Name:               event.Name,
		Tagline:            event.Tagline,
		EventLocation:      event.EventLocation,
		StartTime:          event.StartTime,
		EndTime:            event.EndTime,
		Price:              price,
		TotalRegistrations: event.TotalRegistrations,
		PaidRegistrations:  event.PaidRegistrations,
		InPersonAttendees:  event.InPersonAttendees,
	}
}

func (d *DB) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            eventKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return events.Event{}, events.NewTimeoutError("GetEvent timed out")
		}
		return events.Event{}, events.NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return events.Event{}, events.NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q not found", id), nil)
	}

	var event eventDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &event)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal event from DB: %s", err))
	}
	return eventFromEventDynamo(event), nil
}

func (d *DB) CreateEvent(ctx context.Context, event events.Event) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	dynamoItem := newEventDynamo(event)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return events.NewFailedToTranslateToDBModelError("Failed to convert Event to eventDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoItem.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return events.NewEventAlreadyExistsError(fmt.Sprintf("Event with ID %q already exists", event.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return events.NewTimeoutError("CreateEvent timed out")
		} else {
			return events.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

// UpdateEvent writes the event's details and version. Registration counters
// are left alone; they only move through registration writes.
func (d *DB) UpdateEvent(ctx context.Context, event events.Event) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	item := newEventDynamo(event)

	update := expression.Set(expression.Name("Version"), expression.Value(item.Version)).
		Set(expression.Name("Name"), expression.Value(item.Name)).
		Set(expression.Name("Tagline"), expression.Value(item.Tagline)).
		Set(expression.Name("EventLocation"), expression.Value(item.EventLocation)).
		Set(expression.Name("StartTime"), expression.Value(item.StartTime)).
		Set(expression.Name("EndTime"), expression.Value(item.EndTime)).
		Set(expression.Name("PriceAmount"), expression.Value(item.PriceAmount)).
		Set(expression.Name("PriceCurrency"), expression.Value(item.PriceCurrency))

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(existingEntityVersionConditional(item.Version)).
		WithUpdate(update))

	_, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       eventKey(event.ID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return d.updateEventConditionFailed(ctx, event, err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return events.NewTimeoutError("UpdateEvent timed out")
		} else {
			return events.NewFailedToWriteError("Failed UpdateItem call", err)
		}
	}

	return nil
}

// updateEventConditionFailed tells a missing event apart from one that moved
// past the version the caller read.
func (d *DB) updateEventConditionFailed(ctx context.Context, event events.Event, cause error) error {
	_, err := d.GetEvent(ctx, event.ID)
	switch {
	case events.HasReason(err, events.REASON_EVENT_DOES_NOT_EXIST):
		return events.NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q does not exist", event.ID), cause)
	case err != nil:
		return err
	}

	return events.NewVersionConflictError(fmt.Sprintf("Event with ID %q is not at version %d", event.ID, event.Version-1), cause)
}
