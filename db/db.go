package db

import (
	"os"
	"strconv"

	"github.com/ManHinnn0509/owmidiconverter/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "owmidi-conversions"

// Enabled reports whether a conversions table endpoint is configured.
func Enabled() bool {
	return os.Getenv("OWMIDI_DYNAMO_ENDPOINT") != ""
}

// PutConversionRecord stores one conversion summary. Callers treat a
// failure as non-fatal; the rule text has already been produced.
func PutConversionRecord(rec model.ConversionRecord) error {
	endpoint := os.Getenv("OWMIDI_DYNAMO_ENDPOINT")
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return err
	}

	client := dynamodb.New(sess)
	item := map[string]*dynamodb.AttributeValue{
		"PK":         {S: aws.String(rec.Id)},
		"Filename":   {S: aws.String(rec.Filename)},
		"Voices":     {N: aws.String(strconv.Itoa(rec.Voices))},
		"Transposed": {N: aws.String(strconv.Itoa(rec.Transposed))},
		"Skipped":    {N: aws.String(strconv.Itoa(rec.Skipped))},
		"StopTime":   {N: aws.String(strconv.FormatFloat(rec.StopTime, 'f', 3, 64))},
		"CreatedAt":  {S: aws.String(rec.CreatedAt)},
	}
	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	})
	return err
}
