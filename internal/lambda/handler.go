// Package lambda adapts the ranking export for scheduled AWS Lambda runs.
package lambda

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vitaly-krugl/yaghpy/internal/commands"
)

// NewHandler returns a Lambda handler that runs the configured ranking and
// uploads the JSON snapshot to S3. The action, organization and result limit
// come from GHTOP_ACTION, GHTOP_ORG and GHTOP_MAX.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		action, err := commands.ParseAction(os.Getenv("GHTOP_ACTION"))
		if err != nil {
			return "", fmt.Errorf("GHTOP_ACTION: %w", err)
		}
		org := os.Getenv("GHTOP_ORG")
		if org == "" {
			return "", fmt.Errorf("GHTOP_ORG environment variable must be set")
		}
		if maxStr := os.Getenv("GHTOP_MAX"); maxStr != "" {
			max, err := strconv.Atoi(maxStr)
			if err != nil {
				return "", fmt.Errorf("GHTOP_MAX: %w", err)
			}
			app.Max = max
		}

		var buf bytes.Buffer
		if err := app.ExportJSON(ctx, &buf, action, org); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
		if buf.Len() == 0 {
			return "", fmt.Errorf("export produced no output")
		}

		s3Bucket := os.Getenv("S3_BUCKET_NAME")
		s3ObjectKey := os.Getenv("S3_OBJECT_KEY")
		if s3Bucket == "" || s3ObjectKey == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		date := time.Now().Format("2006-Jan-02")
		s3ObjectKey = fmt.Sprintf(s3ObjectKey, date)

		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			return "", fmt.Errorf("failed to load AWS config: %w", err)
		}

		svc := s3.NewFromConfig(cfg)

		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s3Bucket),
			Key:    aws.String(s3ObjectKey),
			Body:   bytes.NewReader(buf.Bytes()),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload snapshot to S3: %w", err)
		}

		return "Lambda executed successfully and snapshot uploaded to S3", nil
	}
}
