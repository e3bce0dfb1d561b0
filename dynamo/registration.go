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
	"github.com/cenkalti/backoff/v5"
	"github.com/divine-encounter/event-registration/registration"
	"github.com/divine-encounter/event-registration/slices"
	"github.com/google/uuid"
)

var _ registration.Repository = &DB{}

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ID             string
	Version        int
	EventID        string
	FullName       string
	Email          string
	Phone          string
	AttendanceMode registration.AttendanceMode
	Church         *string `dynamodbav:",omitempty"`
	SpecialNeeds   *string `dynamodbav:",omitempty"`
	Newsletter     bool

	PaymentStatus        registration.PaymentStatus
	TransactionReference string
	CreatedAt            time.Time
	PaidAt               *time.Time `dynamodbav:",omitempty"`
	PaidAmount           *int64     `dynamodbav:",omitempty"`
	PaidCurrency         *string    `dynamodbav:",omitempty"`
}

const (
	registrationEntityName = "REGISTRATION"
	referenceEntityName    = "REFERENCE"
)

func registrationPK(eventId uuid.UUID) string {
	return eventPK(eventId)
}

func registrationSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, id)
}

func referenceGSI1PK(reference string) string {
	return fmt.Sprintf("%s#%s", referenceEntityName, reference)
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	item := registrationDynamo{
		PK:                   registrationPK(reg.EventID),
		SK:                   registrationSK(reg.ID),
		GSI1PK:               referenceGSI1PK(reg.TransactionReference),
		GSI1SK:               registrationSK(reg.ID),
		ID:                   reg.ID.String(),
		Version:              reg.Version,
		EventID:              reg.EventID.String(),
		FullName:             reg.FullName,
		Email:                reg.Email,
		Phone:                reg.Phone,
		AttendanceMode:       reg.AttendanceMode,
		Church:               reg.Church,
		SpecialNeeds:         reg.SpecialNeeds,
		Newsletter:           reg.Newsletter,
		PaymentStatus:        reg.PaymentStatus,
		TransactionReference: reg.TransactionReference,
		CreatedAt:            reg.CreatedAt,
		PaidAt:               reg.PaidAt,
	}
	if reg.PaymentAmount != nil {
		amount := reg.PaymentAmount.Amount()
		currency := reg.PaymentAmount.Currency().Code
		item.PaidAmount = &amount
		item.PaidCurrency = &currency
	}
	return item
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	reg := registration.Registration{
		ID:                   uuid.MustParse(dynReg.ID),
		Version:              dynReg.Version,
		EventID:              uuid.MustParse(dynReg.EventID),
		FullName:             dynReg.FullName,
		Email:                dynReg.Email,
		Phone:                dynReg.Phone,
		AttendanceMode:       dynReg.AttendanceMode,
		Church:               dynReg.Church,
		SpecialNeeds:         dynReg.SpecialNeeds,
		Newsletter:           dynReg.Newsletter,
		PaymentStatus:        dynReg.PaymentStatus,
		TransactionReference: dynReg.TransactionReference,
		CreatedAt:            dynReg.CreatedAt,
		PaidAt:               dynReg.PaidAt,
	}
	if dynReg.PaidAmount != nil && dynReg.PaidCurrency != nil {
		reg.PaymentAmount = money.New(*dynReg.PaidAmount, *dynReg.PaidCurrency)
	}
	return reg
}

// eventCounters are added to an event's running totals in place. The event
// version only tracks its details, so counter updates never conflict with
// each other or with a details refresh.
type eventCounters struct {
	TotalRegistrations int
	PaidRegistrations  int
	InPersonAttendees  int
}

func (d *DB) addEventCounters(eventId uuid.UUID, counters eventCounters) *types.Update {
	update := expression.Add(expression.Name("TotalRegistrations"), expression.Value(counters.TotalRegistrations)).
		Add(expression.Name("PaidRegistrations"), expression.Value(counters.PaidRegistrations)).
		Add(expression.Name("InPersonAttendees"), expression.Value(counters.InPersonAttendees))

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(expression.Name("PK").AttributeExists()).
		WithUpdate(update))

	return &types.Update{
		TableName:                 aws.String(d.tableName),
		Key:                       eventKey(eventId),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
}

// writeRegistration puts the registration under regCond and adds counters to
// its event in one transaction. Only the registration carries a version
// condition; the event just has to exist.
func (d *DB) writeRegistration(ctx context.Context, reg registration.Registration, regCond expression.ConditionBuilder, counters eventCounters) error {
	regItem, err := attributevalue.MarshalMap(registrationToDynamo(reg))
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}
	regExpr := exprMustBuild(expression.NewBuilder().WithCondition(regCond))

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      regItem,
					ConditionExpression:       regExpr.Condition(),
					ExpressionAttributeNames:  regExpr.Names(),
					ExpressionAttributeValues: regExpr.Values(),
				},
			},
			{
				Update: d.addEventCounters(reg.EventID, counters),
			},
		},
	}

	// Transactions touching the same event at once are cancelled with
	// TransactionConflict rather than queued.
	_, err = backoff.Retry(ctx, func() (*dynamodb.TransactWriteItemsOutput, error) {
		out, err := d.dynamoClient.TransactWriteItems(ctx, input)
		if err != nil && !isTransactionConflict(err) {
			return nil, backoff.Permanent(err)
		}
		return out, err
	}, backoff.WithBackOff(transactionBackOff()), backoff.WithMaxTries(transactionMaxTries))
	return err
}

func transactionBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	return b
}

func isTransactionConflict(err error) bool {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for i := range canceled.CancellationReasons {
		if cancellationCode(canceled, i) == transactionConflict {
			return true
		}
	}
	return false
}

func cancellationCode(err *types.TransactionCanceledException, i int) string {
	if i >= len(err.CancellationReasons) {
		return ""
	}
	return aws.ToString(err.CancellationReasons[i].Code)
}

// CreateRegistration stores a new pending registration and counts it against
// its event.
func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := d.writeRegistration(ctx, reg, newEntityVersionConditional(reg.Version), eventCounters{TotalRegistrations: 1})
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) {
			return err
		}

		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			switch {
			case cancellationCode(transactionFailedErr, 0) == conditionalCheckFailed:
				return registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with ID %q already exists", reg.ID), err)
			case cancellationCode(transactionFailedErr, 1) == conditionalCheckFailed:
				return registration.NewAssociatedEventDoesNotExistError(fmt.Sprintf("Event does not exist with ID %q", reg.EventID), err)
			}
			return registration.NewFailedToWriteError("TransactWriteItems cancelled", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("CreateRegistration timed out")
		}
		return registration.NewFailedToWriteError("Failed TransactWriteItems call", err)
	}

	return nil
}

// UpdateRegistrationToPaid writes reg over the version below it and counts
// the payment against its event.
func (d *DB) UpdateRegistrationToPaid(ctx context.Context, reg registration.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	counters := eventCounters{PaidRegistrations: 1}
	if reg.AttendanceMode == registration.IN_PERSON {
		counters.InPersonAttendees = 1
	}

	err := d.writeRegistration(ctx, reg, existingEntityVersionConditional(reg.Version), counters)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) {
			return err
		}

		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			switch {
			case cancellationCode(transactionFailedErr, 0) == conditionalCheckFailed:
				return registration.NewVersionConflictError(fmt.Sprintf("Registration with ID %q changed while marking it paid", reg.ID), err)
			case cancellationCode(transactionFailedErr, 1) == conditionalCheckFailed:
				return registration.NewAssociatedEventDoesNotExistError(fmt.Sprintf("Event does not exist with ID %q", reg.EventID), err)
			}
			return registration.NewFailedToWriteError("TransactWriteItems cancelled", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("UpdateRegistrationToPaid timed out")
		}
		return registration.NewFailedToWriteError("Failed TransactWriteItems call", err)
	}

	return nil
}

func (d *DB) GetRegistration(ctx context.Context, eventId uuid.UUID, id uuid.UUID) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrationPK(eventId)},
			"SK": &types.AttributeValueMemberS{Value: registrationSK(id)},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistration timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with event id %q and id %q", eventId, id), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with event id %q and id %q not found", eventId, id), nil)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registration from dynamo: %s", err))
	}

	return dynamoToRegistration(dynReg), nil
}

// GetRegistrationByReference finds the registration a payment reference was
// issued for. The lookup goes through GSI1 and is eventually consistent.
func (d *DB) GetRegistrationByReference(ctx context.Context, reference string) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(referenceGSI1PK(reference)))
	expr := exprMustBuild(expression.NewBuilder().WithKeyCondition(keyCond))

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(gsi1),
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistrationByReference timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with reference %q", reference), err)
	}

	if len(result.Items) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with reference %q not found", reference), nil)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(result.Items[0], &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registration from dynamo: %s", err))
	}

	return dynamoToRegistration(dynReg), nil
}

func (d *DB) GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (registration.GetAllRegistrationsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	keyCond := expression.Key("PK").Equal(expression.Value(registrationPK(eventId))).
		And(expression.Key("SK").BeginsWith(registrationEntityName))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build dynamo key expression: %s", err))
	}

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.GetAllRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// Fetch 1 more than limit to check if there is another page or not
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.GetAllRegistrationsResponse{}, registration.NewTimeoutError("GetAllRegistrationsForEvent timed out")
		}
		return registration.GetAllRegistrationsResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
	}

	var dynamoItems []registrationDynamo
	err = attributevalue.UnmarshalListOfMaps(result.Items, &dynamoItems)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo registrations: %s", err))
	}

	newCursor, hasNextPage := nextPageCursor(limit, result)

	return registration.GetAllRegistrationsResponse{
		Data: slices.Map(dynamoItems, func(v registrationDynamo) registration.Registration {
			return dynamoToRegistration(v)
		})[:min(int(limit), len(dynamoItems))],
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
