package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by the repository.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type buildSessionItem struct {
	ID            string `dynamodbav:"id"`
	Step          string `dynamodbav:"step"`
	Lifecycle     string `dynamodbav:"lifecycle"`
	ConfigID      string `dynamodbav:"config_id,omitempty"`
	Configuration string `dynamodbav:"configuration,omitempty"`
	Verdict       string `dynamodbav:"verdict,omitempty"`
	IssuedSeq     int64  `dynamodbav:"issued_seq"`
	AppliedSeq    int64  `dynamodbav:"applied_seq"`
	VerdictSeq    int64  `dynamodbav:"verdict_seq"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	ExpiresAt     string `dynamodbav:"expires_at"`
	TTL           int64  `dynamodbav:"ttl,omitempty"`
}

// SessionDynamoRepository persists build sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: ttl (epoch seconds, refreshed on every snapshot)
//
// The configuration snapshot and the compatibility verdict are stored as
// separate JSON attributes, each guarded by its own sequence attribute, so a
// late response can never overwrite a newer one.
type SessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.BuildSession) (entities.BuildSession, error) {
	it, err := toBuildSessionItem(s)
	if err != nil {
		return entities.BuildSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BuildSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BuildSession{}, ErrSessionAlreadyExists
		}
		return entities.BuildSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BuildSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            sessionKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BuildSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.BuildSession{}, nil
	}
	return decodeBuildSession(out.Item)
}

// NextSeq atomically bumps issued_seq and returns the new value.
func (r *SessionDynamoRepository) NextSeq(ctx context.Context, id string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 sessionKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #issued_seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#issued_seq": "issued_seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, ErrSessionMissing
		}
		return 0, err
	}
	var seq int64
	if err := attributevalue.Unmarshal(out.Attributes["issued_seq"], &seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *SessionDynamoRepository) ApplySnapshot(ctx context.Context, id string, seq int64, cfg entities.Configuration, expiresAt time.Time) (entities.BuildSession, bool, error) {
	cfg.Compatibility = entities.Verdict{}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return entities.BuildSession{}, false, err
	}

	updated, ok, err := r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #configuration = :configuration, #config_id = :config_id, #applied_seq = :seq, #expires_at = :expires_at, #ttl = :ttl, #updated_at = :updated_at"
		cond := "#applied_seq < :seq AND (attribute_not_exists(#config_id) OR #config_id = :config_id)"
		vals := map[string]types.AttributeValue{
			":configuration": &types.AttributeValueMemberS{Value: string(raw)},
			":config_id":     &types.AttributeValueMemberS{Value: cfg.ID},
			":seq":           &types.AttributeValueMemberN{Value: strconv.FormatInt(seq, 10)},
			":expires_at":    &types.AttributeValueMemberS{Value: formatTime(expiresAt)},
			":ttl":           &types.AttributeValueMemberN{Value: strconv.FormatInt(expiresAt.Unix(), 10)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#configuration": "configuration",
			"#config_id":     "config_id",
			"#applied_seq":   "applied_seq",
			"#expires_at":    "expires_at",
			"#ttl":           "ttl",
			"#updated_at":    "updated_at",
		}
		return expr, cond, vals, names
	})
	if err != nil {
		return entities.BuildSession{}, false, err
	}
	if !ok {
		current, err := r.GetByID(ctx, id)
		return current, false, err
	}
	return updated, true, nil
}

func (r *SessionDynamoRepository) ApplyVerdict(ctx context.Context, id string, seq int64, verdict entities.Verdict) (bool, error) {
	raw, err := json.Marshal(verdict)
	if err != nil {
		return false, err
	}
	_, ok, err := r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #verdict = :verdict, #verdict_seq = :seq, #updated_at = :updated_at"
		cond := "#verdict_seq < :seq"
		vals := map[string]types.AttributeValue{
			":verdict":    &types.AttributeValueMemberS{Value: string(raw)},
			":seq":        &types.AttributeValueMemberN{Value: strconv.FormatInt(seq, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#verdict":     "verdict",
			"#verdict_seq": "verdict_seq",
			"#updated_at":  "updated_at",
		}
		return expr, cond, vals, names
	})
	return ok, err
}

func (r *SessionDynamoRepository) UpdateState(ctx context.Context, id string, step entities.Step, lifecycle entities.Lifecycle) (entities.BuildSession, error) {
	updated, _, err := r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #step = :step, #lifecycle = :lifecycle, #updated_at = :updated_at"
		cond := "#lifecycle IN (:draft, :active)"
		vals := map[string]types.AttributeValue{
			":step":       &types.AttributeValueMemberS{Value: string(step)},
			":lifecycle":  &types.AttributeValueMemberS{Value: string(lifecycle)},
			":draft":      &types.AttributeValueMemberS{Value: string(entities.LifecycleDraft)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.LifecycleActive)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#step":       "step",
			"#lifecycle":  "lifecycle",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
	return updated, err
}

func (r *SessionDynamoRepository) MarkCompleted(ctx context.Context, id string, paymentID, paymentStatus string) (entities.BuildSession, error) {
	updated, _, err := r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #lifecycle = :completed, #payment_id = :payment_id, #payment_status = :payment_status, #updated_at = :updated_at"
		cond := "#lifecycle = :active"
		vals := map[string]types.AttributeValue{
			":completed":      &types.AttributeValueMemberS{Value: string(entities.LifecycleCompleted)},
			":active":         &types.AttributeValueMemberS{Value: string(entities.LifecycleActive)},
			":payment_id":     &types.AttributeValueMemberS{Value: paymentID},
			":payment_status": &types.AttributeValueMemberS{Value: paymentStatus},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#lifecycle":      "lifecycle",
			"#payment_id":     "payment_id",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, cond, vals, names
	})
	return updated, err
}

// update runs a conditional UpdateItem on an existing session. A failed
// condition yields ok=false and a zero session.
func (r *SessionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, condition string, values map[string]types.AttributeValue, names map[string]string),
) (entities.BuildSession, bool, error) {
	now := formatTime(r.now())
	updateExpr, condition, values, names := build(now)

	cond := "attribute_exists(#id)"
	if condition != "" {
		cond += " AND " + condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       sessionKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BuildSession{}, false, nil
		}
		return entities.BuildSession{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.BuildSession{}, false, nil
	}
	s, err := decodeBuildSession(out.Attributes)
	if err != nil {
		return entities.BuildSession{}, false, err
	}
	return s, true, nil
}

func sessionKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func decodeBuildSession(av map[string]types.AttributeValue) (entities.BuildSession, error) {
	var it buildSessionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.BuildSession{}, err
	}
	return fromBuildSessionItem(it)
}

func toBuildSessionItem(s entities.BuildSession) (buildSessionItem, error) {
	it := buildSessionItem{
		ID:            s.ID,
		Step:          string(s.Step),
		Lifecycle:     string(s.Lifecycle),
		IssuedSeq:     s.IssuedSeq,
		AppliedSeq:    s.AppliedSeq,
		VerdictSeq:    s.VerdictSeq,
		PaymentID:     s.PaymentID,
		PaymentStatus: s.PaymentStatus,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
		ExpiresAt:     formatTime(s.ExpiresAt),
	}
	if !s.ExpiresAt.IsZero() {
		it.TTL = s.ExpiresAt.Unix()
	}
	if s.Configuration != nil {
		cfg := *s.Configuration
		verdict, err := json.Marshal(cfg.Compatibility)
		if err != nil {
			return buildSessionItem{}, err
		}
		cfg.Compatibility = entities.Verdict{}
		raw, err := json.Marshal(cfg)
		if err != nil {
			return buildSessionItem{}, err
		}
		it.ConfigID = cfg.ID
		it.Configuration = string(raw)
		it.Verdict = string(verdict)
	}
	return it, nil
}

func fromBuildSessionItem(it buildSessionItem) (entities.BuildSession, error) {
	s := entities.BuildSession{
		ID:            it.ID,
		Step:          entities.Step(it.Step),
		Lifecycle:     entities.Lifecycle(it.Lifecycle),
		IssuedSeq:     it.IssuedSeq,
		AppliedSeq:    it.AppliedSeq,
		VerdictSeq:    it.VerdictSeq,
		PaymentID:     it.PaymentID,
		PaymentStatus: it.PaymentStatus,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		ExpiresAt:     parseTime(it.ExpiresAt),
	}
	if it.Configuration != "" {
		var cfg entities.Configuration
		if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
			return entities.BuildSession{}, err
		}
		if it.Verdict != "" {
			if err := json.Unmarshal([]byte(it.Verdict), &cfg.Compatibility); err != nil {
				return entities.BuildSession{}, err
			}
		}
		s.Configuration = &cfg
	}
	return s, nil
}
