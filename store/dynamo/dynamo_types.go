package dynamo

import (
	"github.com/jobdeck/jobdeck/models"
)

type dynamoUser struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	Id           string `dynamodbav:"Id"`
	Email        string `dynamodbav:"Email"`
	Name         string `dynamodbav:"Name"`
	PasswordHash string `dynamodbav:"PasswordHash"`
	Created      string `dynamodbav:"Created"`
}

// Map domain User -> Dynamo
func userToDynamo(u models.User) dynamoUser {
	return dynamoUser{
		PK:           "USER#" + u.Email,
		SK:           "PROFILE",
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Created:      u.Created,
	}
}

// Map Dynamo -> domain User
func userFromDynamo(du dynamoUser) models.User {
	return models.User{
		Id:           du.Id,
		Email:        du.Email,
		Name:         du.Name,
		PasswordHash: du.PasswordHash,
		Created:      du.Created,
	}
}

type dynamoApplication struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Id        string `dynamodbav:"Id"`
	UserId    string `dynamodbav:"UserId"`
	Content   string `dynamodbav:"Content"`
	CreatedAt string `dynamodbav:"CreatedAt"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// Map domain ApplicationRecord -> Dynamo
func applicationToDynamo(r models.ApplicationRecord) dynamoApplication {
	return dynamoApplication{
		PK:        "APP#" + r.Id,
		SK:        "RECORD",
		Id:        r.Id,
		UserId:    r.UserId,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Map Dynamo -> domain ApplicationRecord
func applicationFromDynamo(da dynamoApplication) models.ApplicationRecord {
	return models.ApplicationRecord{
		Id:        da.Id,
		UserId:    da.UserId,
		Content:   da.Content,
		CreatedAt: da.CreatedAt,
		UpdatedAt: da.UpdatedAt,
	}
}
