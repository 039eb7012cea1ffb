package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gofrs/uuid/v5"

	"github.com/jobdeck/jobdeck/models"
)

const userApplicationsIndex = "GSI_UserApplications"

type DynamoJobdeckStore struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoJobdeckStore(ctx context.Context, devMode bool, dynamodbEndpoint string, tableName string) (*DynamoJobdeckStore, error) {
	client, err := newDynamoDBClient(context.Background(), devMode, dynamodbEndpoint)
	if err != nil {
		return nil, err
	}

	tables, err := getTables(client, ctx)
	if err != nil {
		return nil, err
	}

	foundTable := false
	for _, table := range tables {
		if table == tableName {
			foundTable = true
			break
		}
	}
	if !foundTable {
		return nil, fmt.Errorf("given table name '%s' not found in dynamodb", tableName)
	}

	return &DynamoJobdeckStore{client: client, tableName: tableName}, nil
}

func (dynamoStore *DynamoJobdeckStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	userId, err := uuid.NewV4()
	if err != nil {
		return models.User{}, err
	}
	user.Id = userId.String()
	user.Created = time.Now().UTC().Format(time.RFC3339)

	// Conditional insert: two concurrent registrations for the same email
	// cannot both succeed
	du := userToDynamo(user)
	if err := putItemIfAbsent(dynamoStore, ctx, du); err != nil {
		return models.User{}, err
	}

	return userFromDynamo(du), nil
}

func (dynamoStore *DynamoJobdeckStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	du, err := getItem[dynamoUser](dynamoStore, ctx, "USER#"+email, "PROFILE", false)
	if err != nil {
		return models.User{}, err
	}

	return userFromDynamo(du), nil
}

func (dynamoStore *DynamoJobdeckStore) CreateApplication(ctx context.Context, record models.ApplicationRecord) (models.ApplicationRecord, error) {
	// UUIDv7 so records sort chronologically by id
	appId, err := uuid.NewV7()
	if err != nil {
		return models.ApplicationRecord{}, err
	}
	record.Id = appId.String()

	da := applicationToDynamo(record)
	if err := putItemIfAbsent(dynamoStore, ctx, da); err != nil {
		return models.ApplicationRecord{}, err
	}

	return applicationFromDynamo(da), nil
}

func (dynamoStore *DynamoJobdeckStore) GetApplication(ctx context.Context, id string) (models.ApplicationRecord, error) {
	da, err := getItem[dynamoApplication](dynamoStore, ctx, "APP#"+id, "RECORD", false)
	if err != nil {
		return models.ApplicationRecord{}, err
	}

	return applicationFromDynamo(da), nil
}

func (dynamoStore *DynamoJobdeckStore) GetUserApplications(ctx context.Context, userId string) ([]models.ApplicationRecord, error) {
	dynamoApps, err := queryAllByGSI[dynamoApplication](dynamoStore, ctx, userApplicationsIndex, "UserId", userId)
	if err != nil {
		return nil, err
	}

	records := make([]models.ApplicationRecord, 0, len(dynamoApps))
	for _, da := range dynamoApps {
		records = append(records, applicationFromDynamo(da))
	}

	return records, nil
}

func (dynamoStore *DynamoJobdeckStore) UpdateApplicationContent(ctx context.Context, id string, content string, updatedAt string) error {
	return updateItemFields(dynamoStore, ctx, "APP#"+id, "RECORD", map[string]string{
		"Content":   content,
		"UpdatedAt": updatedAt,
	})
}

func (dynamoStore *DynamoJobdeckStore) DeleteApplication(ctx context.Context, id string, userId string) error {
	return deleteItemWithCondition(dynamoStore, ctx, "APP#"+id, "RECORD", "UserId", userId)
}
